package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/docbridge/gdocs"
	"github.com/tsawler/docbridge/internal/logging"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var documentID string

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract text, URLs and images from Google Docs JSON",
		Long: `Extract reads Google Docs JSON from a file or stdin and prints
{"text", "urls", "images"}. The JSON may be a whole document, an object
with a "content" array, or the array itself. With --document the document
is fetched from the Docs API instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if documentID != "" {
				if len(args) > 0 {
					return fmt.Errorf("--document cannot be combined with an input file")
				}
				runCtx := commandCtx(cmd)
				client, err := ctx.docsClient(runCtx)
				if err != nil {
					return err
				}
				doc, err := client.Document(runCtx, documentID)
				if err != nil {
					return err
				}
				extracted := gdocs.ExtractDocument(doc)
				ctx.log().Info("extracted", logging.FieldDocumentID, documentID,
					"urls", len(extracted.URLs), "images", len(extracted.Images))
				return writeJSON(cmd, extracted)
			}

			data, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}
			extracted, err := gdocs.Extract(data)
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
			ctx.log().Info("extracted", "source", inputName(firstArg(args)),
				"urls", len(extracted.URLs), "images", len(extracted.Images))
			return writeJSON(cmd, extracted)
		},
	}

	cmd.Flags().StringVarP(&documentID, "document", "d", "", "Fetch this document ID from the Docs API")
	return cmd
}
