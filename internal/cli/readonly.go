package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/hook"
)

// newReadOnlyCmd creates the readonly command.
func newReadOnlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readonly [pattern...]",
		Short: "Remove write permission from tracked files matching patterns",
		Long: `Remove write permission from every tracked file matching one of the given
git pathspec patterns. Meant to run as a pre-commit hook.

Without arguments the patterns are read from ` + constants.EnvReadOnlyPatterns + ` (split like a
shell command line) and then from readonly.patterns in .githooks.yaml.

This hook never fails: problems are reported as warnings.

Examples:
  githooks readonly 'vendor/**' go.sum
  ` + constants.EnvReadOnlyPatterns + `="'generated/*.pb.go'" githooks readonly`,
		Annotations: map[string]string{annotationStage: constants.HookStagePreCommit},
		RunE: func(cmd *cobra.Command, args []string) error {
			runReadOnly(cmd.Context(), git.NewRunner(""), "", args)
			return nil
		},
		SilenceUsage: true,
	}
	return cmd
}

// AddReadOnlyCommand adds the readonly command to the root command.
func AddReadOnlyCommand(root *cobra.Command) {
	root.AddCommand(newReadOnlyCmd())
}

// runReadOnly resolves the patterns and runs the hook. Configuration errors
// only cost the configured fallback patterns, and redmine-ref settings are
// never consulted.
func runReadOnly(ctx context.Context, runner git.Runner, dir string, args []string) *hook.ReadOnlyResult {
	logger := zerolog.Ctx(ctx)

	patterns := args
	if len(patterns) == 0 {
		ro, err := loadReadOnlyConfig(ctx, runner)
		if err != nil {
			logger.Warn().Err(err).Msg("could not load configuration, no patterns to apply")
		} else {
			patterns = ro.Patterns
		}
	}

	result := hook.NewReadOnlyHook(runner, dir).Run(ctx, patterns)
	if len(result.Changed) > 0 {
		logger.Info().Strs("files", result.Changed).Msg("write permission removed")
	}
	return result
}
