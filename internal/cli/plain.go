package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
)

// plainCommand creates the plain command.
func (c *CLI) plainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plain [text...]",
		Short: "Fold styled text back to plain letters",
		Long: `Fold styled text back to plain letters.

Mathematical, circled, fullwidth and look-alike letters are replaced by the
ASCII letters they imitate; decorations and symbols that have no plain form
are kept.`,
		Example: `  fontify plain 𝓗𝓸𝓵𝓪
  pbpaste | fontify plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readText(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateText(text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), convert.Plain(text))
			return nil
		},
	}
}
