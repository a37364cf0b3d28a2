package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docbridge"
	"github.com/tsawler/docbridge/format"
)

// convertFlags are shared by the commands that run a conversion.
type convertFlags struct {
	format          string
	startIndex      int
	noImages        bool
	skipBoilerplate bool
	softWraps       bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "auto", "Input format: auto, html, markdown or docx")
	flags.IntVar(&f.startIndex, "start-index", 1, "Document index of the first insertion (overrides config)")
	flags.BoolVar(&f.noImages, "no-images", false, "Drop images instead of inserting them")
	flags.BoolVar(&f.skipBoilerplate, "skip-boilerplate", false, "Drop navigation, sidebars and page headers/footers")
	flags.BoolVar(&f.softWraps, "soft-wraps", false, "Markdown: treat single newlines as spaces")
}

// converter reads input and returns a Converter configured from the config
// file and then the command line.
func (c *commandContext) converter(cmd *cobra.Command, input string, f *convertFlags) (*docbridge.Converter, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	data, err := readInput(cmd, input)
	if err != nil {
		return nil, err
	}

	inFormat, err := resolveFormat(f.format, input, data)
	if err != nil {
		return nil, err
	}
	if inFormat == format.DocsJSON {
		return nil, fmt.Errorf("%s input cannot be converted; use the extract command", inFormat)
	}

	conv := docbridge.FromBytes(data, inFormat).WithOptions(docbridge.ConvertOptions{
		HTML:     cfg.HTMLOptions(),
		Markdown: cfg.MarkdownOptions(),
	})
	if cmd.Flags().Changed("start-index") {
		conv = conv.StartIndex(f.startIndex)
	}
	if f.noImages {
		conv = conv.WithoutImages()
	}
	if f.skipBoilerplate {
		conv = conv.SkipBoilerplate()
	}
	if f.softWraps {
		conv = conv.SoftWraps()
	}

	c.log().Debug("input read", "source", inputName(input), "format", inFormat.String(), "bytes", len(data))
	return conv, nil
}

func resolveFormat(name, input string, data []byte) (format.Format, error) {
	if name != "" && name != "auto" {
		return format.Parse(name)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return format.HTML, nil
	}
	if input == "" || input == "-" {
		return format.DetectContent(data), nil
	}
	return format.DetectFile(input, data), nil
}

func inputName(input string) string {
	if input == "" || input == "-" {
		return "stdin"
	}
	return input
}

// logWarnings reports conversion warnings at WARN level.
func (c *commandContext) logWarnings(warnings []docbridge.Warning) {
	for _, w := range warnings {
		c.log().Warn("conversion warning", "element", w.Element, "property", w.Property, "detail", w.String())
	}
}
