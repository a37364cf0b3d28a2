package htmldoc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docbridge/css"
	"github.com/tsawler/docbridge/model"
)

// enter resolves the scope of element n from its parent's scope. Styles are
// layered as tag defaults, then presentational attributes, then the style
// attribute, and the result is merged over the inherited style so the
// nearest declaration of each property wins.
func (c *converter) enter(n *html.Node, sc scope) (scope, []Warning, error) {
	inner := sc
	var own model.TextStyle
	tag := n.Data

	switch tag {
	case "b", "strong", "th":
		own.Bold = model.FlagOn
	case "i", "em", "cite", "var", "dfn":
		own.Italic = model.FlagOn
	case "u", "ins":
		own.Underline = model.FlagOn
	case "s", "strike", "del":
		own.Strikethrough = model.FlagOn
	case "code", "kbd", "samp", "tt":
		own.FontFamily = c.opts.CodeFontFamily
	case "pre":
		own.FontFamily = c.opts.CodeFontFamily
		inner.pre = true
	case "mark":
		own.Background = c.opts.HighlightColor
	case "sub":
		own.Baseline = model.BaselineSubscript
	case "sup":
		own.Baseline = model.BaselineSuperscript
	case "a":
		if href := strings.TrimSpace(getAttr(n, "href")); href != "" {
			own.Link = href
			own.Underline = model.FlagOn
			own.Foreground = c.opts.LinkColor
		}
	case "blockquote":
		inner.indentPt += quoteIndentPt
	case "center":
		inner.align = css.AlignCenter
	}

	var warnings []Warning
	warn := func(property, value string, err error) {
		warnings = append(warnings, Warning{Element: tag, Property: property, Value: value, Message: reason(err)})
	}

	if v, ok := lookupAttr(n, "color"); ok {
		if hex, err := css.Color(v); err == nil {
			own.Foreground = hex
		} else {
			warn("color", v, err)
		}
	}
	if v, ok := lookupAttr(n, "bgcolor"); ok {
		if hex, err := css.Color(v); err == nil {
			own.Background = hex
		} else {
			warn("bgcolor", v, err)
		}
	}
	if v, ok := lookupAttr(n, "align"); ok && acceptsAlign(tag) {
		if a, err := css.TextAlign(v); err == nil {
			inner.align = a
		} else {
			warn("align", v, err)
		}
	}
	if tag == "font" {
		if v, ok := lookupAttr(n, "face"); ok {
			if family, err := css.FontFamily(v); err == nil {
				own.FontFamily = family
			} else {
				warn("face", v, err)
			}
		}
		if v, ok := lookupAttr(n, "size"); ok {
			if pt, err := css.LegacyFontSize(v); err == nil {
				own.FontSizePt = pt
			} else {
				warn("size", v, err)
			}
		}
	}

	if style, ok := lookupAttr(n, "style"); ok {
		decls, malformed := css.ParseDeclarations(style)
		for _, m := range malformed {
			warnings = append(warnings, Warning{Element: tag, Value: m, Message: "malformed declaration"})
		}
		for _, d := range decls {
			err := c.apply(d, sc, &own, &inner)
			var unit *css.UnsupportedUnitError
			switch {
			case err == nil:
			case errors.As(err, &unit):
				return sc, warnings, fmt.Errorf("htmldoc: <%s>: %w", tag, err)
			default:
				warn(d.Property, d.Value, err)
			}
		}
	}

	inner.style = sc.style.Merge(own)
	return inner, warnings, nil
}

// apply sets one declaration on the element's own style or on its scope.
// Properties without a document equivalent are ignored.
func (c *converter) apply(d css.Declaration, parent scope, own *model.TextStyle, inner *scope) error {
	switch d.Property {
	case "color":
		hex, err := css.Color(d.Value)
		if err != nil {
			return err
		}
		own.Foreground = hex
	case "background-color":
		hex, err := css.Color(d.Value)
		if err != nil {
			return err
		}
		own.Background = hex
	case "background":
		// Only the color component of the shorthand is meaningful here.
		for _, tok := range css.Fields(d.Value) {
			if hex, err := css.Color(tok); err == nil {
				own.Background = hex
				break
			}
		}
	case "font-weight":
		bold, err := css.FontWeight(d.Value)
		if err != nil {
			return err
		}
		own.Bold = model.FlagOf(bold)
	case "font-style":
		italic, err := css.FontStyle(d.Value)
		if err != nil {
			return err
		}
		own.Italic = model.FlagOf(italic)
	case "text-decoration", "text-decoration-line":
		dec, err := css.TextDecoration(d.Value)
		if err != nil {
			return err
		}
		if dec.Underline != nil {
			own.Underline = model.FlagOf(*dec.Underline)
		}
		if dec.LineThrough != nil {
			own.Strikethrough = model.FlagOf(*dec.LineThrough)
		}
	case "font-family":
		family, err := css.FontFamily(d.Value)
		if err != nil {
			return err
		}
		own.FontFamily = family
	case "font-size":
		parentPt := parent.style.FontSizePt
		if parentPt == 0 {
			parentPt = c.opts.BaseFontSizePt
		}
		pt, err := css.FontSize(d.Value, parentPt, c.opts.BaseFontSizePt)
		if err != nil {
			return err
		}
		own.FontSizePt = pt
	case "vertical-align":
		offset, err := css.VerticalAlign(d.Value)
		if err != nil {
			return err
		}
		switch offset {
		case css.OffsetSub:
			own.Baseline = model.BaselineSubscript
		case css.OffsetSuper:
			own.Baseline = model.BaselineSuperscript
		default:
			own.Baseline = model.BaselineNone
		}
	case "text-align":
		align, err := css.TextAlign(d.Value)
		if err != nil {
			return err
		}
		inner.align = align
	}
	return nil
}

func acceptsAlign(tag string) bool {
	switch tag {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "td", "th":
		return true
	}
	return false
}

// reason strips the package prefix and value from a css error.
func reason(err error) string {
	if errors.Is(err, css.ErrInvalidValue) {
		return "invalid value"
	}
	return err.Error()
}
