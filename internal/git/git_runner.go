// Package git provides the git operations the hooks depend on.
// This file implements the CLIRunner which wraps git CLI commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mrz1836/githooks/internal/constants"
	hookerrors "github.com/mrz1836/githooks/internal/errors"
)

// CLIRunner implements Runner using the git CLI.
type CLIRunner struct {
	workDir string // Working directory for git commands, empty for the process cwd
}

// NewRunner creates a new CLIRunner for the given working directory.
// The directory is not verified: hooks treat a missing repository the same
// way as any other failed git call.
func NewRunner(workDir string) *CLIRunner {
	return &CLIRunner{workDir: workDir}
}

// CurrentBranch returns the short name of the branch HEAD points at,
// i.e. the symbolic-ref target of HEAD with refs/heads/ removed.
func (r *CLIRunner) CurrentBranch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	output, err := RunCommand(ctx, r.workDir, "symbolic-ref", "-q", "HEAD")
	if err != nil {
		// -q makes symbolic-ref exit 1 without output when HEAD is detached
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", fmt.Errorf("reading HEAD: %w", ErrNotOnBranch)
		}
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}

	branch := ShortBranchName(output)
	if branch == "" {
		return "", fmt.Errorf("HEAD points at %q: %w", output, ErrNotOnBranch)
	}
	return branch, nil
}

// ShortBranchName strips the refs/heads/ prefix from a full ref name.
// Names without the prefix are returned unchanged.
func ShortBranchName(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), constants.BranchRefPrefix)
}

// AddTrailer appends a trailer to the message file using git interpret-trailers
// with the addIfDifferent policy, so an identical key/value pair is never duplicated.
func (r *CLIRunner) AddTrailer(ctx context.Context, file, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if key == "" {
		return fmt.Errorf("trailer key cannot be empty: %w", hookerrors.ErrEmptyValue)
	}

	_, err := RunCommand(ctx, r.workDir,
		"interpret-trailers",
		"--in-place",
		"--if-exists", constants.TrailerIfExistsPolicy,
		"--trailer", FormatTrailer(key, value),
		file,
	)
	if err != nil {
		return fmt.Errorf("failed to add trailer %q: %w", key, err)
	}

	return nil
}

// FormatTrailer renders a trailer argument as accepted by git interpret-trailers.
func FormatTrailer(key, value string) string {
	return key + ": " + value
}

// TrimEmptyTrailers removes empty trailers from the message file in place.
func (r *CLIRunner) TrimEmptyTrailers(ctx context.Context, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := RunCommand(ctx, r.workDir, "interpret-trailers", "--in-place", "--trim-empty", file)
	if err != nil {
		return fmt.Errorf("failed to trim empty trailers: %w", err)
	}

	return nil
}

// ListTrackedFiles returns tracked files matching the pathspec patterns,
// relative to the working directory. No patterns means no files.
func (r *CLIRunner) ListTrackedFiles(ctx context.Context, patterns []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		return nil, nil
	}

	args := append([]string{"ls-files", "-z", "--"}, patterns...)
	output, err := RunCommand(ctx, r.workDir, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %w", err)
	}

	return splitNUL(output), nil
}

// TopLevel returns the absolute path of the working tree root.
func (r *CLIRunner) TopLevel(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	output, err := RunCommand(ctx, r.workDir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository root: %w", err)
	}

	return filepath.Clean(output), nil
}

// splitNUL splits NUL-separated git output, dropping empty entries.
func splitNUL(output string) []string {
	parts := strings.Split(output, "\x00")
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			files = append(files, p)
		}
	}
	return files
}
