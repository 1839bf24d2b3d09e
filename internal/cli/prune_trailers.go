package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/hook"
)

// newPruneTrailersCmd creates the prune-trailers command.
func newPruneTrailersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-trailers <commit-msg-file>",
		Short: "Remove trailers with empty values from the commit message",
		Long: `Remove every trailer whose value is empty, such as a "Refs:" line left
behind by a commit template. Meant to run as a commit-msg hook.

Example:
  githooks prune-trailers .git/COMMIT_EDITMSG`,
		Annotations: map[string]string{annotationStage: constants.HookStageCommitMsg},
		Args:        exactArgs(1, "commit message file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return hook.NewPruneHook(git.NewRunner("")).Run(cmd.Context(), args[0])
		},
		SilenceUsage: true,
	}
}

// AddPruneTrailersCommand adds the prune-trailers command to the root command.
func AddPruneTrailersCommand(root *cobra.Command) {
	root.AddCommand(newPruneTrailersCmd())
}
