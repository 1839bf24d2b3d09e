// Package hook implements the git commit-lifecycle hooks.
//
// Each hook is a short, linear transformation driven by a git.Runner:
//   - RefHook appends Refs trailers derived from the branch name (prepare-commit-msg)
//   - ReadOnlyHook removes write permission from tracked files (pre-commit)
//   - PruneHook removes empty trailers from the message (commit-msg)
package hook

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/mrz1836/githooks/internal/errors"
)

// PrepareMessageFile makes sure path names a writable regular file.
//
// With keepGoing set, a missing file is created empty first. Some git GUIs
// run prepare-commit-msg before writing the message file. keepGoing does
// not excuse any other problem.
func PrepareMessageFile(ctx context.Context, path string, keepGoing bool) error {
	if path == "" {
		return fmt.Errorf("commit message file path: %w", errors.ErrEmptyValue)
	}

	if keepGoing {
		if err := createIfMissing(ctx, path); err != nil {
			return err
		}
	}

	return CheckWritable(path)
}

// createIfMissing creates an empty file at path if nothing exists there.
func createIfMissing(ctx context.Context, path string) error {
	_, err := os.Stat(path)
	if err == nil || !stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}

	zerolog.Ctx(ctx).Warn().Str("file", path).Msg("commit message file does not exist, creating it")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path comes from git
	if err != nil {
		return fmt.Errorf("creating %s: %w: %w", path, errors.ErrCommitMsgFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("creating %s: %w: %w", path, errors.ErrCommitMsgFile, err)
	}
	return nil
}

// CheckWritable returns an error wrapping ErrCommitMsgFile unless path is
// an existing regular file the process may write to.
func CheckWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, errors.ErrCommitMsgFile, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file: %w", path, errors.ErrCommitMsgFile)
	}
	if err := writable(path); err != nil {
		return fmt.Errorf("%s: %w: %w", path, errors.ErrCommitMsgFile, err)
	}
	return nil
}
