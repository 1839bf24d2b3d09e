// Package git provides the git operations the hooks depend on.
// This file provides error sentinel re-exports from internal/errors.
package git

import (
	hookerrors "github.com/mrz1836/githooks/internal/errors"
)

// ErrGitOperation is re-exported from internal/errors for convenience.
// Use errors.Is(err, ErrGitOperation) to check for git command failures.
var ErrGitOperation = hookerrors.ErrGitOperation

// ErrNotOnBranch is re-exported from internal/errors for convenience.
// Returned by CurrentBranch when HEAD is detached.
var ErrNotOnBranch = hookerrors.ErrNotOnBranch
