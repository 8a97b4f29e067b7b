package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/symbols"
)

// symbolsCommand creates the symbols command.
func (c *CLI) symbolsCommand() *cobra.Command {
	var (
		format string
		phrase bool
	)

	cmd := &cobra.Command{
		Use:   "symbols [collection]",
		Short: "Print symbol collections for copy and paste",
		Example: `  fontify symbols
  fontify symbols hearts
  fontify symbols --phrase`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, col := range symbols.Collections() {
				ids = append(ids, col.ID+"\t"+col.Label)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if phrase {
				fmt.Fprintln(w, symbols.RandomPhrase(convert.Global))
				return nil
			}

			cols := symbols.Collections()
			if len(args) == 1 {
				col, err := symbols.Lookup(args[0])
				if err != nil {
					return err
				}
				cols = []symbols.Collection{col}
			}

			switch format {
			case pipeline.FormatJSON:
				return writeJSON(w, cols)
			case pipeline.FormatYAML:
				return writeYAML(w, cols)
			case pipeline.FormatPlain:
				for _, col := range cols {
					fmt.Fprintln(w, strings.Join(col.Items, " "))
				}
				return nil
			case "", pipeline.FormatTable:
				for i, col := range cols {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintln(w, StyleTitle.Render(col.Label)+" "+StyleDim.Render("("+col.ID+")"))
					for _, line := range chunk(col.Items, 16) {
						fmt.Fprintln(w, "  "+strings.Join(line, " "))
					}
				}
				return nil
			}
			return pipeline.ValidateFormat(format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, plain, json, yaml")
	cmd.Flags().BoolVar(&phrase, "phrase", false, "print a random aesthetic phrase instead")
	return cmd
}

func chunk(items []string, n int) [][]string {
	var out [][]string
	for len(items) > n {
		out = append(out, items[:n])
		items = items[n:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
