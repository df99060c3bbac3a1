package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for codemap.

To load completions:

Bash:
  $ source <(codemap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ codemap completion bash > /etc/bash_completion.d/codemap
  # macOS:
  $ codemap completion bash > $(brew --prefix)/etc/bash_completion.d/codemap

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ codemap completion zsh > "${fpath[1]}/_codemap"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ codemap completion fish | source

  # To load completions for each session, execute once:
  $ codemap completion fish > ~/.config/fish/completions/codemap.fish

PowerShell:
  PS> codemap completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> codemap completion powershell > codemap.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
