package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/docbridge/gdocs"
	"github.com/tsawler/docbridge/internal/logging"
)

type pushOutput struct {
	ConversionID string   `json:"conversion_id,omitempty"`
	DocumentID   string   `json:"document_id"`
	StartIndex   int      `json:"start_index"`
	EndIndex     int      `json:"end_index"`
	Requests     int      `json:"requests"`
	Batches      int      `json:"batches"`
	RevisionID   string   `json:"revision_id,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
}

func newPushCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags
	var appendMode bool

	cmd := &cobra.Command{
		Use:   "push <document-id> [file]",
		Short: "Convert a file and apply it to a Google Doc",
		Long: `Push converts a file (or stdin) and submits the requests to the
document with documents.batchUpdate. With --append the content is inserted
at the end of the document body instead of at --start-index.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			documentID := strings.TrimSpace(args[0])
			if documentID == "" {
				return gdocs.ErrNoDocumentID
			}
			if appendMode && cmd.Flags().Changed("start-index") {
				return fmt.Errorf("--append and --start-index cannot be combined")
			}

			runCtx := commandCtx(cmd)
			logger := ctx.log().With(logging.FieldDocumentID, documentID)

			conv, err := ctx.converter(cmd, firstArg(args[1:]), &flags)
			if err != nil {
				return err
			}

			client, err := ctx.docsClient(runCtx)
			if err != nil {
				return err
			}
			if appendMode {
				index, err := client.AppendIndex(runCtx, documentID)
				if err != nil {
					return fmt.Errorf("find end of document: %w", err)
				}
				logger.Debug("appending", "index", index)
				conv = conv.StartIndex(index)
			}

			res, warnings, err := conv.Result()
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			ctx.logWarnings(warnings)

			applied, err := client.Apply(runCtx, documentID, res.Ops)
			if err != nil {
				return fmt.Errorf("push to %s: %w", documentID, err)
			}

			payload := pushOutput{
				ConversionID: ctx.conversionID,
				DocumentID:   documentID,
				StartIndex:   res.Start,
				EndIndex:     res.End,
				Requests:     applied.Requests,
				Batches:      applied.Batches,
				RevisionID:   applied.RevisionID,
			}
			for _, w := range warnings {
				payload.Warnings = append(payload.Warnings, w.String())
			}
			return writeJSON(cmd, payload)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false, "Insert at the end of the document")
	return cmd
}
