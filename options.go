package docbridge

import (
	"github.com/tsawler/docbridge/htmldoc"
	"github.com/tsawler/docbridge/markdown"
)

// Warning describes a style declaration or attribute that was ignored.
type Warning = htmldoc.Warning

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	HTML     htmldoc.Options
	Markdown markdown.Options
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		HTML:     htmldoc.DefaultOptions(),
		Markdown: markdown.Options{},
	}
}
