package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/style"
)

// pinCommand creates the pin command group.
func (c *CLI) pinCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage pinned styles (listed first by convert and tui)",
	}

	cmd.AddCommand(c.pinAddCommand())
	cmd.AddCommand(c.pinRemoveCommand())
	cmd.AddCommand(c.pinListCommand())

	return cmd
}

func (c *CLI) pinAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "add <style-id>...",
		Short:             "Pin styles",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeStyleIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := c.newStore()
			for _, id := range args {
				s, err := style.Default().Lookup(id)
				if err != nil {
					return err
				}
				if err := store.Pin(cmd.Context(), id); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Pinned %s %s", StyleHighlight.Render(id), StyleDim.Render(s.Name))
			}
			return nil
		},
	}
}

func (c *CLI) pinRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <style-id>...",
		Aliases: []string{"rm"},
		Short:   "Unpin styles",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := c.newStore()
			for _, id := range args {
				if err := store.Unpin(cmd.Context(), id); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Unpinned %s", StyleHighlight.Render(id))
			}
			return nil
		},
	}
}

func (c *CLI) pinListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pinned styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			st, err := c.newStore().Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(st.Pinned) == 0 {
				printInfo(w, "No pinned styles")
				return nil
			}
			for _, id := range st.Pinned {
				s, err := style.Default().Lookup(id)
				if err != nil {
					fmt.Fprintln(w, stylePin.Render(iconPin)+" "+id+" "+StyleWarning.Render("(unknown style)"))
					continue
				}
				fmt.Fprintln(w, stylePin.Render(iconPin)+" "+id+" "+StyleDim.Render(s.Name)+"  "+s.Apply(s.Name))
			}
			return nil
		},
	}
}

// historyCommand creates the history command group.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the copy history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List copied texts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			st, err := c.newStore().Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(st.History) == 0 {
				printInfo(w, "History is empty")
				return nil
			}
			for i, text := range st.History {
				fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("%2d", i+1)), text)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget every copied text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.newStore().ClearHistory(cmd.Context()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	})

	return cmd
}
