package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
// More specific sentinels must come before the ones they may wrap.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrIDLengthRange,
		info: ErrorInfo{
			Message: "The minimum ID length is greater than the maximum ID length.",
			Action:  "Check -m/MIN_ID_LENGTH and -M/MAX_ID_LENGTH.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "A numeric option is out of range.",
			Action:  "ID counts and lengths must be positive integers.",
		},
	},
	{
		err: ErrInvalidConfig,
		info: ErrorInfo{
			Message: "The hook configuration is invalid.",
			Action:  "Check the hook arguments, environment variables and .githooks.yaml.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "Invalid command-line arguments.",
			Action:  "Run with --help to see the expected usage.",
		},
	},
	{
		err: ErrCommitMsgFile,
		info: ErrorInfo{
			Message: "The commit message file cannot be written.",
			Action:  "Use -k/KEEP_GOING if your git client runs the hook before creating the file.",
		},
	},
	{
		err: ErrNoReferenceIDs,
		info: ErrorInfo{
			Message: "The branch name does not contain a ticket number.",
			Action:  "Rename the branch to include the ticket ID, or unset -f/FAIL_IF_NO_IDS.",
		},
	},
	{
		err: ErrNotOnBranch,
		info: ErrorInfo{
			Message: "HEAD is detached.",
			Action:  "Check out a named branch.",
		},
	},
	{
		err: ErrGitOperation,
		info: ErrorInfo{
			Message: "A git command failed.",
			Action:  "Run with --verbose to see the git output.",
		},
	},
	{
		err: ErrUnsupportedOutputFormat,
		info: ErrorInfo{
			Message: "Unsupported output format.",
			Action:  "Use one of: text, yaml, json.",
		},
	},
}

// getErrorInfo looks up the ErrorInfo for a given error using errors.Is().
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
