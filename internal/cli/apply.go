package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/style"
)

// applyCommand creates the apply command.
func (c *CLI) applyCommand() *cobra.Command {
	var (
		flags   renderFlags
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "apply <style-id> [text...]",
		Short: "Render text in a single style",
		Long: `Render text in a single style and print it.

With --copy the result is also placed on the clipboard through the terminal
(OSC 52, supported by most modern terminals and by tmux) and recorded in the
copy history.`,
		Example: `  fontify apply script-normal Hola
  fontify apply tat-roman-num 2025 --copy
  fontify apply got-core-bold -d swords "Rey del Norte"`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeStyleIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readText(args[1:])
			if err != nil {
				return err
			}

			opts, _, seed := c.options(&flags)
			runner, err := c.newRunner(seed)
			if err != nil {
				return err
			}
			it, err := runner.Apply(cmd.Context(), args[0], text, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), it.Output)

			if !copyOut {
				return nil
			}
			if it.Output == "" {
				printWarning(cmd.ErrOrStderr(), "nothing to copy")
				return nil
			}
			if err := copyToClipboard(cmd.ErrOrStderr(), it.Output); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "copy to clipboard")
			}
			if err := c.newStore().AddHistory(cmd.Context(), it.Output); err != nil {
				printWarning(cmd.ErrOrStderr(), "history not saved: %s", errors.UserMessage(err))
			}
			printSuccess(cmd.ErrOrStderr(), "Copied %s", StyleHighlight.Render(it.Name))
			return nil
		},
	}
	flags.register(cmd, false)
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the result to the clipboard (OSC 52)")
	return cmd
}

// copyToClipboard emits an OSC 52 sequence on w, wrapped for tmux or
// screen when running inside one.
func copyToClipboard(w io.Writer, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(w)
	return err
}

func completeStyleIDs(_ *cobra.Command, args []string, prefix string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, s := range style.Default().All() {
		if strings.HasPrefix(s.ID, prefix) {
			out = append(out, s.ID+"\t"+s.Name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
