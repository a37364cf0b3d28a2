package model

import (
	"fmt"
	"strings"
)

// Flag is a tri-state boolean property. The zero value means the property was
// never set and should inherit from the enclosing style.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagOn
	FlagOff
)

// Set reports whether the flag carries an explicit value.
func (f Flag) Set() bool { return f != FlagUnset }

// On reports whether the flag is explicitly on.
func (f Flag) On() bool { return f == FlagOn }

func (f Flag) String() string {
	switch f {
	case FlagOn:
		return "on"
	case FlagOff:
		return "off"
	default:
		return "unset"
	}
}

// FlagOf converts a bool into an explicit flag.
func FlagOf(b bool) Flag {
	if b {
		return FlagOn
	}
	return FlagOff
}

// Baseline represents a vertical text offset.
type Baseline uint8

const (
	BaselineUnset Baseline = iota
	BaselineNone
	BaselineSubscript
	BaselineSuperscript
)

func (b Baseline) String() string {
	switch b {
	case BaselineNone:
		return "NONE"
	case BaselineSubscript:
		return "SUBSCRIPT"
	case BaselineSuperscript:
		return "SUPERSCRIPT"
	default:
		return ""
	}
}

// TextStyle is the resolved set of character properties for a run.
// Colors are canonical lower-case "#rrggbb" strings; empty means unset.
type TextStyle struct {
	Bold          Flag
	Italic        Flag
	Underline     Flag
	Strikethrough Flag
	FontFamily    string
	FontSizePt    float64 // 0 = unset
	Foreground    string
	Background    string
	Baseline      Baseline
	Link          string
}

// Merge returns s with every property set in child overriding the
// corresponding property of s. Neither value is modified.
func (s TextStyle) Merge(child TextStyle) TextStyle {
	out := s
	if child.Bold.Set() {
		out.Bold = child.Bold
	}
	if child.Italic.Set() {
		out.Italic = child.Italic
	}
	if child.Underline.Set() {
		out.Underline = child.Underline
	}
	if child.Strikethrough.Set() {
		out.Strikethrough = child.Strikethrough
	}
	if child.FontFamily != "" {
		out.FontFamily = child.FontFamily
	}
	if child.FontSizePt > 0 {
		out.FontSizePt = child.FontSizePt
	}
	if child.Foreground != "" {
		out.Foreground = child.Foreground
	}
	if child.Background != "" {
		out.Background = child.Background
	}
	if child.Baseline != BaselineUnset {
		out.Baseline = child.Baseline
	}
	if child.Link != "" {
		out.Link = child.Link
	}
	return out
}

// IsZero reports whether no property is set.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}

// Fields returns the Docs API field mask names of the set properties, in a
// stable order.
func (s TextStyle) Fields() []string {
	var fields []string
	if s.Bold.Set() {
		fields = append(fields, "bold")
	}
	if s.Italic.Set() {
		fields = append(fields, "italic")
	}
	if s.Underline.Set() {
		fields = append(fields, "underline")
	}
	if s.Strikethrough.Set() {
		fields = append(fields, "strikethrough")
	}
	if s.FontFamily != "" {
		fields = append(fields, "weightedFontFamily")
	}
	if s.FontSizePt > 0 {
		fields = append(fields, "fontSize")
	}
	if s.Foreground != "" {
		fields = append(fields, "foregroundColor")
	}
	if s.Background != "" {
		fields = append(fields, "backgroundColor")
	}
	if s.Baseline != BaselineUnset {
		fields = append(fields, "baselineOffset")
	}
	if s.Link != "" {
		fields = append(fields, "link")
	}
	return fields
}

// String renders the set properties, mostly for diagnostics and tables.
func (s TextStyle) String() string {
	var parts []string
	flag := func(name string, f Flag) {
		switch f {
		case FlagOn:
			parts = append(parts, name)
		case FlagOff:
			parts = append(parts, "no-"+name)
		}
	}
	flag("bold", s.Bold)
	flag("italic", s.Italic)
	flag("underline", s.Underline)
	flag("strike", s.Strikethrough)
	if s.FontFamily != "" {
		parts = append(parts, "font="+s.FontFamily)
	}
	if s.FontSizePt > 0 {
		parts = append(parts, fmt.Sprintf("size=%gpt", s.FontSizePt))
	}
	if s.Foreground != "" {
		parts = append(parts, "color="+s.Foreground)
	}
	if s.Background != "" {
		parts = append(parts, "bg="+s.Background)
	}
	if s.Baseline != BaselineUnset {
		parts = append(parts, "baseline="+s.Baseline.String())
	}
	if s.Link != "" {
		parts = append(parts, "link="+s.Link)
	}
	return strings.Join(parts, " ")
}

// Alignment values follow the Docs API enum.
const (
	AlignStart     = "START"
	AlignCenter    = "CENTER"
	AlignEnd       = "END"
	AlignJustified = "JUSTIFIED"
)

// ParagraphStyle holds block-level properties applied over a paragraph range.
type ParagraphStyle struct {
	NamedStyle        string // HEADING_1 .. HEADING_6, empty = unchanged
	Alignment         string
	IndentStartPt     float64
	IndentFirstLinePt float64
}

// IsZero reports whether no property is set.
func (p ParagraphStyle) IsZero() bool {
	return p == ParagraphStyle{}
}

// Fields returns the Docs API field mask names of the set properties.
func (p ParagraphStyle) Fields() []string {
	var fields []string
	if p.NamedStyle != "" {
		fields = append(fields, "namedStyleType")
	}
	if p.Alignment != "" {
		fields = append(fields, "alignment")
	}
	if p.IndentStartPt > 0 {
		fields = append(fields, "indentStart")
	}
	if p.IndentFirstLinePt > 0 {
		fields = append(fields, "indentFirstLine")
	}
	return fields
}

// HeadingStyle returns the named style for a heading level (1-6).
func HeadingStyle(level int) string {
	if level < 1 || level > 6 {
		return ""
	}
	return fmt.Sprintf("HEADING_%d", level)
}
