package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tsawler/docbridge/model"
)

const inspectTextWidth = 40

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags
	var showOps bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the blocks and index ranges a conversion produces",
		Args:  cobra.MaximumNArgs(1),
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Kind", "Level", "Range", "Newline", "Text"},
				blockRows(res),
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft}))

			if showOps {
				rows := make([][]string, len(res.Ops))
				for i, op := range res.Ops {
					rows[i] = []string{strconv.Itoa(i + 1), op.Kind.String(), op.String()}
				}
				fmt.Fprintln(out, renderTable(out, []string{"#", "Op", "Detail"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft}))
			}

			fmt.Fprintf(out, "%d blocks, %d ops, indexes %d-%d, %d warnings\n",
				countBlocks(res), len(res.Ops), res.Start, res.End, len(warnings))
			for _, w := range warnings {
				fmt.Fprintf(out, "  warning: %s\n", w)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showOps, "ops", false, "Also list every operation")
	return cmd
}

func blockRows(res *model.Result) [][]string {
	var rows [][]string
	res.Walk(func(b *model.Block) bool {
		level := ""
		switch {
		case b.Kind == model.BlockHeading:
			level = "h" + strconv.Itoa(b.Level)
		case b.Kind == model.BlockListItem:
			level = strconv.Itoa(b.Depth)
			if b.Ordered {
				level += " (ol)"
			}
		}
		newline := "-"
		if b.Terminator >= 0 {
			newline = strconv.Itoa(b.Terminator)
		}
		rows = append(rows, []string{
			strconv.Itoa(len(rows) + 1),
			b.Kind.String(),
			level,
			fmt.Sprintf("[%d,%d)", b.Range.Start, b.Range.End),
			newline,
			clip(b.Text(), inspectTextWidth),
		})
		return true
	})
	return rows
}

func countBlocks(res *model.Result) int {
	n := 0
	res.Walk(func(*model.Block) bool {
		n++
		return true
	})
	return n
}

// clip shortens s to at most width runes on a single line.
func clip(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
