package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/githooks/internal/config"
	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/hook"
)

// RedmineRefFlags holds flags specific to the redmine-ref command.
type RedmineRefFlags struct {
	MaxIDCount      int
	MinIDLength     int
	MaxIDLength     int
	OneLiner        bool
	DefaultRefValue string
	FailIfNoIDs     bool
	KeepGoing       bool
}

// redmineRefFlagKeys maps flag names to configuration keys.
//
//nolint:gochecknoglobals // Static binding table
var redmineRefFlagKeys = map[string]string{
	"max-id-count":      config.KeyMaxIDCount,
	"min-id-length":     config.KeyMinIDLength,
	"max-id-length":     config.KeyMaxIDLength,
	"one-liner":         config.KeyOneLiner,
	"default-ref-value": config.KeyDefaultRefValue,
	"fail-if-no-ids":    config.KeyFailIfNoIDs,
	"keep-going":        config.KeyKeepGoing,
}

// newRedmineRefCmd creates the redmine-ref command.
func newRedmineRefCmd(flags *RedmineRefFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redmine-ref [flags] <commit-msg-file>",
		Short: "Add Refs trailers for ticket IDs found in the branch name",
		Long: `Add "Refs: #<id>" trailers to the commit message for every run of digits in
the current branch name. Meant to run as a prepare-commit-msg hook.

Every flag can also be set with an environment variable or in the
redmine_ref section of .githooks.yaml at the repository root. Flags win over
environment variables, which win over the file. Boolean environment variables
count as set whenever they are non-empty.

  -c  MAX_ID_COUNT       maximum number of IDs to reference (default 5)
  -m  MIN_ID_LENGTH      minimum number of digits in an ID (default 3)
  -M  MAX_ID_LENGTH      maximum number of digits in an ID (default 10)
  -1  ONE_LINER          put all references on a single trailer line
  -d  DEFAULT_REF_VALUE  reference to add when the branch has no IDs
  -f  FAIL_IF_NO_IDS     fail when the branch has no IDs
  -k  KEEP_GOING         create the message file if it does not exist yet

Examples:
  githooks redmine-ref .git/COMMIT_EDITMSG
  githooks redmine-ref -1 -d '#MISSING' .git/COMMIT_EDITMSG`,
		Annotations: map[string]string{annotationStage: constants.HookStagePrepareCommitMsg},
		Args:        exactArgs(1, "commit message file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRedmineRef(cmd.Context(), cmd, git.NewRunner(""), args[0])
		},
		SilenceUsage: true,
	}

	d := config.DefaultRefConfig()
	cmd.Flags().IntVarP(&flags.MaxIDCount, "max-id-count", "c", d.MaxIDCount, "maximum number of IDs to reference ("+constants.EnvMaxIDCount+")")
	cmd.Flags().IntVarP(&flags.MinIDLength, "min-id-length", "m", d.MinIDLength, "minimum ID length ("+constants.EnvMinIDLength+")")
	cmd.Flags().IntVarP(&flags.MaxIDLength, "max-id-length", "M", d.MaxIDLength, "maximum ID length ("+constants.EnvMaxIDLength+")")
	cmd.Flags().BoolVarP(&flags.OneLiner, "one-liner", "1", d.OneLiner, "single trailer line for all IDs ("+constants.EnvOneLiner+")")
	cmd.Flags().StringVarP(&flags.DefaultRefValue, "default-ref-value", "d", d.DefaultRefValue, "reference used when no IDs are found ("+constants.EnvDefaultRefValue+")")
	cmd.Flags().BoolVarP(&flags.FailIfNoIDs, "fail-if-no-ids", "f", d.FailIfNoIDs, "fail when no IDs are found ("+constants.EnvFailIfNoIDs+")")
	cmd.Flags().BoolVarP(&flags.KeepGoing, "keep-going", "k", d.KeepGoing, "create a missing message file ("+constants.EnvKeepGoing+")")

	return cmd
}

// AddRedmineRefCommand adds the redmine-ref command to the root command.
func AddRedmineRefCommand(root *cobra.Command) {
	flags := &RedmineRefFlags{}
	root.AddCommand(newRedmineRefCmd(flags))
}

// runRedmineRef resolves the configuration and runs the hook.
func runRedmineRef(ctx context.Context, cmd *cobra.Command, runner git.Runner, msgFile string) error {
	cfg, _, err := loadConfig(ctx, runner, func(l *config.Loader) error {
		for name, key := range redmineRefFlagKeys {
			if err := l.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	result, err := hook.NewRefHook(runner).Run(ctx, cfg.RedmineRef, msgFile)
	if err != nil {
		return err
	}

	if len(result.Appended) > 0 {
		zerolog.Ctx(ctx).Debug().Strs("refs", result.Appended).Msg("references added")
	}
	return nil
}
