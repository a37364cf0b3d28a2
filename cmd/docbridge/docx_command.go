package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/docbridge/docx"
)

type docxTextOutput struct {
	Text      string `json:"text"`
	SizeBytes int    `json:"size_bytes"`
}

func newDocxCommand(ctx *commandContext) *cobra.Command {
	docxCmd := &cobra.Command{
		Use:   "docx",
		Short: "Read and write Word documents",
	}
	docxCmd.AddCommand(newDocxTextCommand(ctx))
	docxCmd.AddCommand(newDocxCreateCommand(ctx))
	return docxCmd
}

func newDocxTextCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "text [file]",
		Short: "Print the paragraph text of a .docx file as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}
			text, err := docx.ExtractText(data)
			if err != nil {
				return fmt.Errorf("read docx: %w", err)
			}
			ctx.log().Debug("docx read", "source", inputName(firstArg(args)), "bytes", len(data))
			return writeJSON(cmd, docxTextOutput{Text: text, SizeBytes: len(data)})
		},
	}
}

func newDocxCreateCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var text string

	cmd := &cobra.Command{
		Use:   "create [file]",
		Short: "Write a .docx with one paragraph per input line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(outPath) == "" {
				return fmt.Errorf("--output is required")
			}
			content := text
			if !cmd.Flags().Changed("text") {
				data, err := readInput(cmd, firstArg(args))
				if err != nil {
					return err
				}
				content = string(data)
			}

			data, err := docx.FromText(content)
			if err != nil {
				return fmt.Errorf("build docx: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			ctx.log().Info("docx written", "path", outPath, "bytes", len(data))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", outPath, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Destination .docx path")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to write instead of reading a file")
	return cmd
}
