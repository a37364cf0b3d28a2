package docbridge

import (
	"fmt"
	"html"
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/tsawler/docbridge/css"
	"github.com/tsawler/docbridge/docx"
	"github.com/tsawler/docbridge/format"
	"github.com/tsawler/docbridge/gdocs"
	"github.com/tsawler/docbridge/htmldoc"
	"github.com/tsawler/docbridge/markdown"
	"github.com/tsawler/docbridge/model"
)

// Converter provides a fluent interface for converting a document into
// Google Docs operations. Each configuration method returns a new
// Converter, so a configured Converter can be reused and shared.
type Converter struct {
	source   []byte
	filename string
	format   format.Format
	options  ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Converter. The source is never modified, so
// it is shared.
func (c *Converter) clone() *Converter {
	n := *c
	return &n
}

func (c *Converter) fail(err error) *Converter {
	n := c.clone()
	if n.err == nil {
		n.err = err
	}
	return n
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// StartIndex sets the document index the first insertion is addressed to.
// Google Docs body content starts at 1; the default is 0.
func (c *Converter) StartIndex(index int) *Converter {
	if index < 0 {
		return c.fail(fmt.Errorf("start index %d is negative", index))
	}
	n := c.clone()
	n.options.HTML.StartIndex = index
	return n
}

// BaseFontSize sets the size in points that relative font sizes resolve
// against.
func (c *Converter) BaseFontSize(pt float64) *Converter {
	if pt <= 0 {
		return c.fail(fmt.Errorf("base font size %v must be positive", pt))
	}
	n := c.clone()
	n.options.HTML.BaseFontSizePt = pt
	return n
}

// CodeFont sets the font family used for code.
func (c *Converter) CodeFont(family string) *Converter {
	n := c.clone()
	n.options.HTML.CodeFontFamily = family
	return n
}

// LinkColor sets the color applied to links. Any CSS color is accepted.
func (c *Converter) LinkColor(color string) *Converter {
	hex, err := css.Color(color)
	if err != nil {
		return c.fail(fmt.Errorf("link color: %w", err))
	}
	n := c.clone()
	n.options.HTML.LinkColor = hex
	return n
}

// HighlightColor sets the background applied to <mark>.
func (c *Converter) HighlightColor(color string) *Converter {
	hex, err := css.Color(color)
	if err != nil {
		return c.fail(fmt.Errorf("highlight color: %w", err))
	}
	n := c.clone()
	n.options.HTML.HighlightColor = hex
	return n
}

// WithoutImages drops images instead of inserting them.
func (c *Converter) WithoutImages() *Converter {
	n := c.clone()
	n.options.HTML.SkipImages = true
	return n
}

// SkipBoilerplate drops navigation, sidebars and page headers and footers.
func (c *Converter) SkipBoilerplate() *Converter {
	n := c.clone()
	n.options.HTML.SkipBoilerplate = true
	return n
}

// SoftWraps renders single newlines in Markdown as spaces instead of line
// breaks.
func (c *Converter) SoftWraps() *Converter {
	n := c.clone()
	n.options.Markdown.SoftWraps = true
	return n
}

// OmitRawHTML drops raw HTML embedded in Markdown.
func (c *Converter) OmitRawHTML() *Converter {
	n := c.clone()
	n.options.Markdown.OmitRawHTML = true
	return n
}

// WithOptions replaces all options at once.
func (c *Converter) WithOptions(opts ConvertOptions) *Converter {
	n := c.clone()
	n.options = opts
	return n
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Result converts the source and returns the blocks and ops.
func (c *Converter) Result() (*model.Result, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	switch c.format {
	case format.HTML:
		return htmldoc.ConvertString(string(c.source), c.options.HTML)
	case format.Markdown:
		return markdown.Convert(c.source, c.options.Markdown, c.options.HTML)
	case format.DOCX:
		text, err := docx.ExtractText(c.source)
		if err != nil {
			return nil, nil, err
		}
		return htmldoc.ConvertString(textToHTML(text), c.options.HTML)
	}
	return nil, nil, fmt.Errorf("cannot convert %s input", c.format)
}

// Ops converts the source and returns the operations.
func (c *Converter) Ops() ([]model.Op, []Warning, error) {
	res, warnings, err := c.Result()
	if err != nil {
		return nil, nil, err
	}
	return res.Ops, warnings, nil
}

// Requests converts the source and returns Docs API batchUpdate requests.
func (c *Converter) Requests() ([]*docs.Request, []Warning, error) {
	ops, warnings, err := c.Ops()
	if err != nil {
		return nil, nil, err
	}
	return gdocs.Requests(ops), warnings, nil
}

// Text converts the source and returns the text the document will contain.
func (c *Converter) Text() (string, []Warning, error) {
	res, warnings, err := c.Result()
	if err != nil {
		return "", nil, err
	}
	return res.Text(), warnings, nil
}

// textToHTML wraps each line of plain text in a paragraph.
func textToHTML(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(line))
		sb.WriteString("</p>")
	}
	return sb.String()
}
