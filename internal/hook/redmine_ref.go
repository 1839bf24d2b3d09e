package hook

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrz1836/githooks/internal/config"
	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/errors"
	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/refs"
)

// RefResult describes what RefHook did.
type RefResult struct {
	// Branch is the short branch name, empty when HEAD could not be resolved.
	Branch string
	// IDs are the candidate IDs taken from the branch name.
	IDs []string
	// Decision is the outcome of the decision table.
	Decision refs.Decision
	// Appended are the trailer values passed to git, in order.
	Appended []string
}

// RefHook appends Refs trailers for the issue IDs found in the branch name.
type RefHook struct {
	git git.Runner
}

// NewRefHook creates a RefHook backed by the given git runner.
func NewRefHook(r git.Runner) *RefHook {
	return &RefHook{git: r}
}

// Run validates the message file, extracts IDs from the current branch and
// appends the resulting trailers. Fatal conditions are detected before the
// first trailer is written; each trailer append is atomic on its own.
func (h *RefHook) Run(ctx context.Context, cfg config.RefConfig, msgFile string) (*RefResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := PrepareMessageFile(ctx, msgFile, cfg.KeepGoing); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("hook", "redmine-ref").Str("stage", constants.HookStagePrepareCommitMsg).Logger()
	result := &RefResult{}

	branch, err := h.git.CurrentBranch(ctx)
	switch {
	case err == nil:
		result.Branch = branch
		result.IDs = refs.ExtractIDs(branch, refs.Bounds{
			MinLength: cfg.MinIDLength,
			MaxLength: cfg.MaxIDLength,
			MaxCount:  cfg.MaxIDCount,
		})
		if len(result.IDs) == 0 {
			logger.Debug().Str("branch", branch).Msg("branch name contains no reference ids")
		}
	case stderrors.Is(err, errors.ErrNotOnBranch):
		logger.Debug().Msg("HEAD is detached, treating as no reference ids")
	default:
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn().Err(err).Msg("could not resolve branch name, treating as no reference ids")
	}

	result.Decision = refs.Decide(result.IDs, refs.Policy{
		OneLiner:        cfg.OneLiner,
		DefaultRefValue: cfg.DefaultRefValue,
		FailIfNoIDs:     cfg.FailIfNoIDs,
	})

	logger.Debug().
		Str("branch", result.Branch).
		Strs("ids", result.IDs).
		Str("rule", result.Decision.Rule).
		Stringer("action", result.Decision.Action).
		Msg("reference decision")

	switch result.Decision.Action {
	case refs.ActionFail:
		return result, fmt.Errorf("branch %q: %w", result.Branch, errors.ErrNoReferenceIDs)
	case refs.ActionSkip:
		return result, nil
	case refs.ActionAppend:
	}

	for _, value := range result.Decision.Values {
		if err := h.git.AddTrailer(ctx, msgFile, constants.RefsTrailerKey, value); err != nil {
			return result, errors.Wrapf(err, "appending %s trailer", constants.RefsTrailerKey)
		}
		result.Appended = append(result.Appended, value)
		logger.Debug().Str("value", value).Msg("trailer appended")
	}

	return result, nil
}
