package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/pipeline"
	"github.com/matzehuels/fontify/pkg/style"
)

// stylesCommand creates the styles command.
func (c *CLI) stylesCommand() *cobra.Command {
	var (
		category    string
		format      string
		sample      string
		decorations bool
	)

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the style catalog",
		Example: `  fontify styles -c goticas
  fontify styles -f json
  fontify styles --decorations`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if decorations {
				return printDecorations(cmd, category)
			}

			cat, err := style.ParseCategory(category)
			if err != nil {
				return err
			}
			if format == "" {
				format = c.Config.Format
			}
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			styles := style.ByCategory(cat)
			if format == pipeline.FormatTable {
				fmt.Fprintln(w, StyleTitle.Render(cat.Label()))
			}
			return writeStyles(w, styles, sample, format)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only styles of this category")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, plain, json, yaml")
	cmd.Flags().StringVar(&sample, "sample", "Abc 123", "sample text rendered next to each style")
	cmd.Flags().BoolVar(&decorations, "decorations", false, "list decorations and case modes instead")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)

	return cmd
}

// printDecorations lists the decorations offered for a category, or all of
// them, followed by the case modes.
func printDecorations(cmd *cobra.Command, category string) error {
	w := cmd.OutOrStdout()
	decos := style.Decorations()
	if category != "" {
		cat, err := style.ParseCategory(category)
		if err != nil {
			return err
		}
		decos = style.DecorationsFor(cat)
	}

	fmt.Fprintln(w, StyleTitle.Render("Decorations"))
	for _, d := range decos {
		printKeyValue(w, string(d), styleDecoration.Render(d.Apply("Abc")))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Case"))
	for _, cs := range convert.Cases() {
		printKeyValue(w, string(cs), cs.Apply("hola mundo"))
	}
	return nil
}
