package htmldoc

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/docbridge/css"
	"github.com/tsawler/docbridge/model"
)

const htmlSpace = " \t\n\f\r"

// text emits a text node as a run in the inherited style. Outside pre,
// whitespace collapses as a browser would render it.
func (c *converter) text(n *html.Node, sc scope, st state) state {
	if sc.pre {
		return c.preText(n.Data, sc, st)
	}

	s := collapseWhitespace(n.Data)
	if !st.open.hasContent || st.open.lastSpace {
		s = strings.TrimLeft(s, " ")
	}
	if atBlockEnd(n) {
		s = strings.TrimRight(s, " ")
	}
	switch {
	case s == "":
		return st
	case s == " ":
		if !st.open.space {
			st.open.space = true
			st.open.spaceStyle = sc.style
		}
		return st
	}

	if st.open.space {
		var prefix string
		prefix, st = c.takeSpace(sc.style, st)
		s = prefix + strings.TrimLeft(s, " ")
	}
	return c.emitRun(norm.NFC.String(s), sc.style, st)
}

// takeSpace releases a deferred space. It keeps the style of the text it
// came from: when that differs from style the space is emitted as its own
// run, otherwise it is returned for the caller to prepend.
func (c *converter) takeSpace(style model.TextStyle, st state) (string, state) {
	st.open.space = false
	if st.open.spaceStyle == style {
		return " ", st
	}
	return "", c.emitRun(" ", st.open.spaceStyle, st)
}

// preText emits preformatted text verbatim. Trailing newlines are held back
// so the last line of a code block does not open an empty paragraph.
func (c *converter) preText(raw string, sc scope, st state) state {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	body := strings.TrimRight(s, "\n")
	trailing := len(s) - len(body)
	if body == "" {
		st.open.breaks += trailing
		return st
	}
	if st.open.breaks > 0 {
		body = strings.Repeat("\n", st.open.breaks) + body
	}

	st = c.emitRun(norm.NFC.String(body), sc.style, st)
	st.open.breaks = trailing
	return st
}

// emitRun inserts text at the cursor and styles it.
func (c *converter) emitRun(text string, style model.TextStyle, st state) state {
	r := model.Range{Start: st.cursor, End: st.cursor + model.TextLength(text)}

	st.ops = append(st.ops, model.InsertText(r.Start, text))
	if !style.IsZero() {
		st.ops = append(st.ops, model.UpdateTextStyle(r, style))
	}
	st.cursor = r.End

	st.open.runs = append(st.open.runs, model.Run{Text: text, Style: style, Range: r})
	st.open.hasContent = true
	st.open.lastSpace = strings.HasSuffix(text, " ")
	st.open.breaks = 0
	return st
}

// image emits an inline image. Images whose source Docs cannot fetch are
// reported and skipped.
func (c *converter) image(n *html.Node, sc scope, st state) (state, error) {
	if c.opts.SkipImages {
		return st, nil
	}
	src := strings.TrimSpace(getAttr(n, "src"))
	if src == "" {
		return st, nil
	}
	if !isRemoteURL(src) {
		st.warnings = append(st.warnings, Warning{
			Element:  "img",
			Property: "src",
			Value:    truncate(src, 64),
			Message:  "only http and https images can be inserted",
		})
		return st, nil
	}

	width, height, err := c.imageSize(n, &st)
	if err != nil {
		return st, err
	}

	if st.open.space {
		var prefix string
		prefix, st = c.takeSpace(sc.style, st)
		if prefix != "" {
			st = c.emitRun(prefix, sc.style, st)
		}
	}
	st.ops = append(st.ops, model.InsertImage(st.cursor, src, width, height))
	st.cursor++
	st.open.hasContent = true
	st.open.lastSpace = false
	return st, nil
}

// imageSize reads width and height from the attributes, overridden by the
// style attribute.
func (c *converter) imageSize(n *html.Node, st *state) (width, height float64, err error) {
	measure := func(property, value string, unitless bool) (float64, error) {
		pt, err := css.Length(property, value, unitless)
		var unit *css.UnsupportedUnitError
		switch {
		case err == nil:
			return pt, nil
		case errors.As(err, &unit):
			return 0, fmt.Errorf("htmldoc: <img>: %w", err)
		}
		st.warnings = append(st.warnings, Warning{Element: "img", Property: property, Value: value, Message: reason(err)})
		return 0, nil
	}

	// Bare attribute numbers are CSS pixels.
	for _, prop := range []string{"width", "height"} {
		v, ok := lookupAttr(n, prop)
		if !ok {
			continue
		}
		pt, err := measure(prop, v, true)
		if err != nil {
			return 0, 0, err
		}
		if prop == "width" {
			width = pt
		} else {
			height = pt
		}
	}

	decls, _ := css.ParseDeclarations(getAttr(n, "style"))
	for _, d := range decls {
		if d.Property != "width" && d.Property != "height" {
			continue
		}
		pt, err := measure(d.Property, d.Value, false)
		if err != nil {
			return 0, 0, err
		}
		if pt == 0 {
			continue
		}
		if d.Property == "width" {
			width = pt
		} else {
			height = pt
		}
	}
	return width, height, nil
}

// checkbox renders a task-list checkbox as a ballot box character.
func (c *converter) checkbox(n *html.Node, sc scope, st state) state {
	if !strings.EqualFold(getAttr(n, "type"), "checkbox") {
		return st
	}
	box := "\u2610 "
	if _, checked := lookupAttr(n, "checked"); checked {
		box = "\u2611 "
	}
	if st.open.space {
		var prefix string
		prefix, st = c.takeSpace(sc.style, st)
		box = prefix + box
	}
	return c.emitRun(box, sc.style, st)
}

func isRemoteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// collapseWhitespace replaces each run of HTML whitespace with one space.
// Non-breaking spaces are content and are kept.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if strings.ContainsRune(htmlSpace, r) {
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// atBlockEnd reports whether nothing but whitespace separates n from the end
// of the paragraph it belongs to.
func atBlockEnd(n *html.Node) bool {
	for x := n; x != nil; x = x.Parent {
		for s := x.NextSibling; s != nil; s = s.NextSibling {
			switch s.Type {
			case html.TextNode:
				if strings.Trim(s.Data, htmlSpace) != "" {
					return false
				}
			case html.ElementNode:
				if shouldSkipElement(s.Data) {
					continue
				}
				return isBlockBoundary(s.Data)
			}
		}
		p := x.Parent
		if p == nil || p.Type != html.ElementNode || isBlockBoundary(p.Data) {
			return true
		}
	}
	return true
}
