// Package errors provides centralized error handling for githooks.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the hooks. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidConfig indicates a configuration value could not be parsed
	// or is inconsistent with another value.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrIDLengthRange indicates the minimum ID length exceeds the maximum ID length.
	ErrIDLengthRange = errors.New("min id length is greater than max id length")

	// ErrInvalidArgument indicates that an invalid or missing positional argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCommitMsgFile indicates the commit message file is missing, not a
	// regular file, or not writable.
	ErrCommitMsgFile = errors.New("commit message file is not writable")

	// ErrNoReferenceIDs indicates no reference IDs were found in the branch name
	// while the hook was configured to require at least one.
	ErrNoReferenceIDs = errors.New("no reference ids found in branch name")

	// ErrGitOperation indicates that a git command failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrNotOnBranch indicates HEAD does not point at a named branch (detached HEAD).
	ErrNotOnBranch = errors.New("HEAD is not on a named branch")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrUnsupportedOutputFormat indicates that an unsupported output format was specified.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
