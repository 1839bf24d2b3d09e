package hook

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/errors"
	"github.com/mrz1836/githooks/internal/git"
)

// PruneHook removes trailers with empty values from a commit message.
type PruneHook struct {
	git git.Runner
}

// NewPruneHook creates a PruneHook backed by the given git runner.
func NewPruneHook(r git.Runner) *PruneHook {
	return &PruneHook{git: r}
}

// Run rewrites msgFile in place without its empty trailers.
func (h *PruneHook) Run(ctx context.Context, msgFile string) error {
	if err := PrepareMessageFile(ctx, msgFile, false); err != nil {
		return err
	}

	if err := h.git.TrimEmptyTrailers(ctx, msgFile); err != nil {
		return errors.Wrap(err, "pruning empty trailers")
	}

	zerolog.Ctx(ctx).Debug().
		Str("hook", "prune-trailers").
		Str("stage", constants.HookStageCommitMsg).
		Str("file", msgFile).
		Msg("empty trailers removed")
	return nil
}
