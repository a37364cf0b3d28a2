// Package markdown renders Markdown to HTML so it can be converted by
// htmldoc. Rendering follows the conventions of chat and note-taking tools:
// GitHub-flavored tables, strikethrough and task lists, footnotes and
// definition lists, and single newlines kept as line breaks.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/tsawler/docbridge/htmldoc"
	"github.com/tsawler/docbridge/model"
)

// Options controls Markdown rendering.
type Options struct {
	// SoftWraps renders single newlines as spaces, as CommonMark does,
	// instead of line breaks.
	SoftWraps bool

	// OmitRawHTML drops raw HTML in the source instead of passing it
	// through to the converter.
	OmitRawHTML bool
}

// New returns a goldmark renderer configured by opts.
func New(opts Options) goldmark.Markdown {
	var htmlOpts []renderer.Option
	if !opts.SoftWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}
	if !opts.OmitRawHTML {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
		),
		goldmark.WithParserOptions(parser.WithAttribute()),
		goldmark.WithRendererOptions(htmlOpts...),
	)
}

// ToHTML renders Markdown source to an HTML fragment.
func ToHTML(src []byte, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := New(opts).Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// Convert renders Markdown and converts the resulting HTML into document
// build operations.
func Convert(src []byte, opts Options, convertOpts htmldoc.Options) (*model.Result, []htmldoc.Warning, error) {
	rendered, err := ToHTML(src, opts)
	if err != nil {
		return nil, nil, err
	}
	return htmldoc.ConvertString(rendered, convertOpts)
}
