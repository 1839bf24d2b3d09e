// Package git provides the git operations the hooks depend on.
// This file defines the Runner interface for git CLI operations.
package git

import "context"

// Runner defines the git operations used by the hooks.
// All operations run in the runner's working directory and use context for cancellation.
type Runner interface {
	// CurrentBranch returns the short name of the branch HEAD points at.
	// Returns an error wrapping ErrNotOnBranch if HEAD is detached.
	CurrentBranch(ctx context.Context) (string, error)

	// AddTrailer appends "key: value" to the trailer block of the message file
	// in place, unless the exact same trailer is already present.
	AddTrailer(ctx context.Context, file, key, value string) error

	// TrimEmptyTrailers removes trailers whose value is empty or whitespace
	// from the message file in place.
	TrimEmptyTrailers(ctx context.Context, file string) error

	// ListTrackedFiles returns the tracked files matching the given pathspec patterns.
	ListTrackedFiles(ctx context.Context, patterns []string) ([]string, error)

	// TopLevel returns the absolute path of the working tree root.
	TopLevel(ctx context.Context) (string, error)
}
