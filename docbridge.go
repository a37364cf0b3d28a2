// Package docbridge provides a fluent API for converting HTML and Markdown
// into Google Docs batchUpdate operations.
//
// Basic usage:
//
//	ops, warnings, err := docbridge.FromHTML("<h1>Title</h1><p>Hello <b>world</b></p>").Ops()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docbridge.FormatWarnings(warnings))
//	}
//
// With options:
//
//	reqs, _, err := docbridge.Open("notes.md").
//	    StartIndex(1).
//	    BaseFontSize(12).
//	    Requests()
//
// For finer control, the htmldoc, markdown and gdocs packages can be used
// directly.
package docbridge

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/docbridge/format"
)

// FromHTML returns a Converter for an HTML document or fragment.
//
// Example:
//
//	res, _, err := docbridge.FromHTML(`<p style="color:red">hi</p>`).Result()
func FromHTML(markup string) *Converter {
	return &Converter{source: []byte(markup), format: format.HTML, options: defaultOptions()}
}

// FromMarkdown returns a Converter for Markdown source.
func FromMarkdown(src string) *Converter {
	return &Converter{source: []byte(src), format: format.Markdown, options: defaultOptions()}
}

// FromBytes returns a Converter for data in the given format. Use
// format.DetectContent when the format is not known.
func FromBytes(data []byte, f format.Format) *Converter {
	c := &Converter{source: data, format: f, options: defaultOptions()}
	if f == format.Unknown {
		c.err = fmt.Errorf("unsupported input format")
	}
	return c
}

// Open reads a file and returns a Converter for it. The format comes from
// the extension, falling back to the content. Read errors are reported by
// the terminal operation.
//
// Example:
//
//	ops, _, err := docbridge.Open("page.html").Ops()
func Open(filename string) *Converter {
	data, err := os.ReadFile(filename)
	if err != nil {
		return &Converter{filename: filename, options: defaultOptions(), err: fmt.Errorf("reading %s: %w", filename, err)}
	}
	c := FromBytes(data, format.DetectFile(filename, data))
	c.filename = filename
	return c
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOps is like Must for the terminal operations that also return
// warnings, which are discarded.
//
// Example:
//
//	ops := docbridge.MustOps(docbridge.FromMarkdown("# Hi").Ops())
func MustOps[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
