package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontify/pkg/config"
	"github.com/matzehuels/fontify/pkg/state"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config and state file locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printKeyValue(w, "config", c.configFile())
			printKeyValue(w, "state", c.newStore().Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Config.Encode(cmd.OutOrStdout())
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile()
			if err := config.Default().Write(path, force); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote %s", path)
			printDetail(cmd.OutOrStdout(), "history keeps %d entries (history_size)", state.DefaultHistorySize)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.Path()
}
