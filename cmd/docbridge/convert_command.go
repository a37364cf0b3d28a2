package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/docs/v1"

	"github.com/tsawler/docbridge/gdocs"
	"github.com/tsawler/docbridge/model"
)

type convertOutput struct {
	ConversionID string          `json:"conversion_id,omitempty"`
	Requests     []*docs.Request `json:"requests"`
	Warnings     []string        `json:"warnings,omitempty"`
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags
	var output string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert HTML, Markdown or DOCX into Docs batchUpdate requests",
		Long: `Convert reads a file (or stdin when the file is "-" or omitted) and
writes the Google Docs batchUpdate requests that reproduce it.

Output modes:
  requests  JSON {"requests": [...]} ready for documents.batchUpdate
  ops       one operation per line
  text      the document text the requests insert`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := ctx.converter(cmd, firstArg(args), &flags)
			if err != nil {
				return err
			}
			res, warnings, err := conv.Result()
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			ctx.logWarnings(warnings)
			ctx.log().Info("converted",
				"ops", len(res.Ops),
				"inserts", res.CountOps(model.OpInsertText)+res.CountOps(model.OpInsertImage),
				"start", res.Start,
				"end", res.End,
				"warnings", len(warnings))

			out := cmd.OutOrStdout()
			switch strings.ToLower(output) {
			case "requests", "json", "":
				payload := convertOutput{
					ConversionID: ctx.conversionID,
					Requests:     gdocs.Requests(res.Ops),
				}
				for _, w := range warnings {
					payload.Warnings = append(payload.Warnings, w.String())
				}
				return writeJSON(cmd, payload)
			case "ops":
				for _, op := range res.Ops {
					fmt.Fprintln(out, op.String())
				}
				return nil
			case "text":
				_, err := fmt.Fprint(out, res.Text())
				return err
			}
			return fmt.Errorf("unknown output mode %q (want requests, ops or text)", output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "requests", "Output mode: requests, ops or text")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
