// Package cli provides the command-line interface for githooks.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/githooks/internal/errors"
	"github.com/mrz1836/githooks/internal/logging"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates and returns the root command for the githooks CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "githooks",
		Short: "Git commit hooks for Redmine-style issue references",
		Long: `githooks bundles small git commit-lifecycle hooks:

  redmine-ref     prepare-commit-msg: add Refs trailers for ticket IDs in the branch name
  readonly        pre-commit: remove write permission from tracked files
  prune-trailers  commit-msg: remove trailers with empty values

Each hook is meant to be called by a hook manager with the arguments git passes.`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without subcommands.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			logger, err := flags.newLogger(v)
			flags.logger = logger
			if err != nil {
				logger.Warn().Err(err).Msg("log file disabled")
			}

			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		// SilenceUsage prevents printing usage on error
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddRedmineRefCommand(cmd)
	AddReadOnlyCommand(cmd)
	AddPruneTrailersCommand(cmd)
	AddConfigCommand(cmd)
	AddCompletionCommand(cmd)

	return cmd
}

// newLogger builds the logger from the bound global settings.
func (f *GlobalFlags) newLogger(v *viper.Viper) (*logging.Logger, error) {
	opts := logging.Options{
		Verbose:  v.GetBool("verbose"),
		Quiet:    v.GetBool("quiet"),
		FilePath: v.GetString("log_file"),
	}
	if f.logOutput != nil {
		return logging.NewWithWriter(opts, f.logOutput)
	}
	return logging.New(opts)
}

// closeLogger releases the log file opened by PersistentPreRunE.
func (f *GlobalFlags) closeLogger() {
	if f.logger != nil {
		_ = f.logger.Close()
		f.logger = nil
	}
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer flags.closeLogger()

	err := cmd.ExecuteContext(ctx)
	printHint(cmd.ErrOrStderr(), err)
	return err
}

// printHint prints the suggested action for a known error after cobra's
// own "Error:" line.
func printHint(w io.Writer, err error) {
	if err == nil {
		return
	}
	if _, action := errors.Actionable(err); action != "" {
		_, _ = fmt.Fprintln(w, "Hint: "+action)
	}
}

