package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. Style ids, categories,
// decorations and symbol collections complete as well as commands.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for fontify. Besides commands and flags,
style ids, categories, case modes, decorations and symbol collections complete.

To load completions:

Bash:
  $ source <(fontify completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ fontify completion bash > /etc/bash_completion.d/fontify
  # macOS:
  $ fontify completion bash > $(brew --prefix)/etc/bash_completion.d/fontify

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ fontify completion zsh > "${fpath[1]}/_fontify"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ fontify completion fish | source

  # To load completions for each session, execute once:
  $ fontify completion fish > ~/.config/fish/completions/fontify.fish

PowerShell:
  PS> fontify completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> fontify completion powershell > fontify.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
