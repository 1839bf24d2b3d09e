package constants

// Git hook stages the hooks are registered for.
const (
	HookStagePreCommit        = "pre-commit"
	HookStagePrepareCommitMsg = "prepare-commit-msg"
	HookStageCommitMsg        = "commit-msg"
)

// Trailer settings used by the redmine-ref hook.
const (
	// RefsTrailerKey is the trailer key appended to commit messages.
	RefsTrailerKey = "Refs"

	// RefPrefix is prepended to every reference ID found in the branch name.
	RefPrefix = "#"

	// OneLinerSeparator joins reference IDs in one-liner mode.
	OneLinerSeparator = ", "

	// TrailerIfExistsPolicy is passed to git interpret-trailers --if-exists.
	TrailerIfExistsPolicy = "addIfDifferent"
)

// BranchRefPrefix is stripped from the symbolic-ref target of HEAD.
const BranchRefPrefix = "refs/heads/"
