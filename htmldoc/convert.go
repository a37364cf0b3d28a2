package htmldoc

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/tsawler/docbridge/model"
)

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// Convert reads HTML from r and converts it into document build operations.
// Ignored declarations are reported as warnings; only unparseable markup
// and unsupported units fail the conversion.
func Convert(r io.Reader, opts Options) (*model.Result, []Warning, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	return ConvertString(string(data), opts)
}

// ConvertString converts an HTML string.
func ConvertString(markup string, opts Options) (*model.Result, []Warning, error) {
	if !utf8.ValidString(markup) {
		return nil, nil, &ParseError{Err: errInvalidUTF8}
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	return ConvertNode(doc, opts)
}

// ConvertNode converts an already parsed document or fragment root.
func ConvertNode(doc *html.Node, opts Options) (*model.Result, []Warning, error) {
	c := &converter{opts: opts.withDefaults()}
	if c.opts.SkipBoilerplate {
		c.boilerplate = newBoilerplateFilter(doc)
	}

	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}

	st := state{cursor: c.opts.StartIndex}
	st.open = pending{frame: frame{kind: frameContainer}, start: st.cursor}
	st, err := c.walk(root, scope{}, st)
	if err != nil {
		return nil, nil, err
	}
	st = c.flush(st)

	return &model.Result{
		Blocks: st.blocks,
		Ops:    st.ops,
		Start:  c.opts.StartIndex,
		End:    st.cursor,
	}, st.warnings, nil
}

// converter holds the immutable settings of one conversion. Everything that
// changes during the walk travels in scope (downwards) and state (threaded
// through and returned).
type converter struct {
	opts        Options
	boilerplate *boilerplateFilter
}

// scope is the inherited context of a node. It is passed by value, so a
// child can never change what its siblings see.
type scope struct {
	style    model.TextStyle
	frame    frame   // block collecting inline content
	lists    int     // enclosing ul/ol elements
	ordered  bool    // type of the innermost list
	pre      bool    // whitespace is preserved
	align    string  // inherited text-align, css.Align*
	indentPt float64 // blockquote indentation
}

// state accumulates output in document order.
type state struct {
	cursor   int
	ops      []model.Op
	blocks   []model.Block
	warnings []Warning
	open     pending
}

// pending is the block currently receiving inline content.
type pending struct {
	frame      frame
	start      int
	runs       []model.Run
	hasContent bool // content emitted since the last terminator
	terminated bool // the frame has already closed at least one paragraph
	space      bool // collapsed whitespace waiting for following text
	spaceStyle model.TextStyle
	lastSpace  bool // the last emitted text ended in a space
	breaks     int  // trailing newlines held back inside pre
}

func (c *converter) walkChildren(n *html.Node, sc scope, st state) (state, error) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		var err error
		st, err = c.walk(child, sc, st)
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

func (c *converter) walk(n *html.Node, sc scope, st state) (state, error) {
	switch n.Type {
	case html.TextNode:
		return c.text(n, sc, st), nil
	case html.DocumentNode:
		return c.walkChildren(n, sc, st)
	case html.ElementNode:
	default:
		return st, nil
	}

	tag := n.Data
	if shouldSkipElement(tag) {
		return st, nil
	}
	if c.boilerplate != nil && c.boilerplate.excluded(n) {
		return st, nil
	}

	inner, warnings, err := c.enter(n, sc)
	if err != nil {
		return st, err
	}
	st.warnings = append(st.warnings, warnings...)

	switch {
	case tag == "br":
		return c.terminate(st), nil
	case tag == "hr":
		return c.rule(inner, st), nil
	case tag == "img":
		return c.image(n, inner, st)
	case tag == "input":
		return c.checkbox(n, inner, st), nil
	case tag == "table":
		return c.table(n, inner, st)
	case tag == "ul" || tag == "ol":
		inner.lists++
		inner.ordered = tag == "ol"
		return c.list(n, inner, st)
	case isBlockElement(tag):
		return c.block(n, frameFor(tag, inner), inner, st)
	}
	return c.walkChildren(n, inner, st)
}

// shouldSkipElement reports elements whose content never reaches the document.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed",
		"head", "title", "select", "textarea":
		return true
	}
	return false
}

// isBlockElement reports elements that open their own paragraph.
func isBlockElement(tagName string) bool {
	switch tagName {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "div", "body",
		"section", "article", "main", "header", "footer", "nav", "aside",
		"blockquote", "pre", "figure", "figcaption", "address", "center",
		"dl", "dt", "dd", "form", "fieldset", "details", "summary", "caption":
		return true
	}
	return false
}

// isBlockBoundary reports elements that end the inline content before them.
func isBlockBoundary(tagName string) bool {
	switch tagName {
	case "br", "hr", "table", "tr", "td", "th", "ul", "ol", "thead", "tbody", "tfoot":
		return true
	}
	return isBlockElement(tagName)
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tagName); found != nil {
			return found
		}
	}
	return nil
}

// getAttr returns the value of an attribute, or "" if absent.
func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
