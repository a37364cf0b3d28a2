// Package htmldoc converts HTML into document build operations.
package htmldoc

import (
	"fmt"

	"github.com/tsawler/docbridge/css"
)

// Options controls how markup is converted.
type Options struct {
	// StartIndex is the document index the first insertion is addressed to.
	// Google Docs body content starts at 1.
	StartIndex int

	// BaseFontSizePt is the size em, rem and % font sizes resolve against
	// when no size has been inherited.
	BaseFontSizePt float64

	// CodeFontFamily is applied to code, kbd, samp, tt and pre.
	CodeFontFamily string

	// LinkColor and HighlightColor are applied to links and <mark>
	// elements. Any CSS color is accepted; invalid values fall back to the
	// defaults.
	LinkColor      string
	HighlightColor string

	// SkipImages drops <img> elements instead of emitting image inserts.
	SkipImages bool

	// SkipBoilerplate drops navigation, sidebars and page-level headers and
	// footers, which is useful when converting scraped web pages.
	SkipBoilerplate bool
}

const (
	defaultCodeFont       = "Courier New"
	defaultLinkColor      = "#0563c1"
	defaultHighlightColor = "#ffff00"
)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		BaseFontSizePt: css.DefaultFontSizePt,
		CodeFontFamily: defaultCodeFont,
		LinkColor:      defaultLinkColor,
		HighlightColor: defaultHighlightColor,
	}
}

// withDefaults fills unset fields from DefaultOptions and brings colors into
// "#rrggbb" form.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BaseFontSizePt <= 0 {
		o.BaseFontSizePt = d.BaseFontSizePt
	}
	if o.CodeFontFamily == "" {
		o.CodeFontFamily = d.CodeFontFamily
	}
	o.LinkColor = canonicalColor(o.LinkColor, d.LinkColor)
	o.HighlightColor = canonicalColor(o.HighlightColor, d.HighlightColor)
	if o.StartIndex < 0 {
		o.StartIndex = 0
	}
	return o
}

// canonicalColor resolves any CSS color to "#rrggbb". Empty and unusable
// values give fallback.
func canonicalColor(value, fallback string) string {
	if value == "" {
		return fallback
	}
	hex, err := css.Color(value)
	if err != nil {
		return fallback
	}
	return hex
}

// ParseError reports markup that could not be parsed into a DOM. No partial
// result accompanies it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("htmldoc: parsing markup: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Warning describes a style declaration or attribute that was ignored.
type Warning struct {
	Element  string // tag name
	Property string // CSS property or attribute; empty for malformed declarations
	Value    string
	Message  string
}

func (w Warning) String() string {
	if w.Property == "" {
		return fmt.Sprintf("<%s>: %s: %q", w.Element, w.Message, w.Value)
	}
	return fmt.Sprintf("<%s> %s: %s: %q", w.Element, w.Property, w.Message, w.Value)
}
