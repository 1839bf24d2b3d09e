package cli

import (
	"github.com/spf13/cobra"
)

// AddCompletionCommand adds the completion command with one subcommand per
// supported shell. It replaces Cobra's default completion command.
func AddCompletionCommand(rootCmd *cobra.Command) {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for githooks.

  githooks completion bash
  githooks completion zsh
  githooks completion fish
  githooks completion powershell`,
	}

	completionCmd.AddCommand(
		newCompletionCmd("bash", "source <(githooks completion bash)", func(cmd *cobra.Command) error {
			return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
		}),
		newCompletionCmd("zsh", "source <(githooks completion zsh)", func(cmd *cobra.Command) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		}),
		newCompletionCmd("fish", "githooks completion fish | source", func(cmd *cobra.Command) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		}),
		newCompletionCmd("powershell", "githooks completion powershell | Out-String | Invoke-Expression", func(cmd *cobra.Command) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}),
	)

	rootCmd.AddCommand(completionCmd)
}

// newCompletionCmd creates the subcommand printing the script for one shell.
func newCompletionCmd(shell, load string, gen func(*cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   shell,
		Short: "Generate " + shell + " completion script",
		Long: `Generate ` + shell + ` completion script for githooks.

To load completions in current session:
  ` + load,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gen(cmd)
		},
	}
}
