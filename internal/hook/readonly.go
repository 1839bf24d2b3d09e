package hook

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/git"
)

// writeBits are the permission bits cleared by ReadOnlyHook.
const writeBits fs.FileMode = 0o222

// ReadOnlyResult lists what ReadOnlyHook did with each matched file.
type ReadOnlyResult struct {
	// Changed files had their write permission removed.
	Changed []string
	// Unchanged files were already read-only or are symlinks.
	Unchanged []string
	// Missing files are tracked but absent from the working tree.
	Missing []string
	// Failed files could not be inspected or changed.
	Failed []string
}

// ReadOnlyHook removes write permission from tracked files matching glob patterns.
// It never fails: problems are logged as warnings.
type ReadOnlyHook struct {
	git git.Runner
	dir string
}

// NewReadOnlyHook creates a ReadOnlyHook. dir must be the runner's working
// directory, since git reports paths relative to it.
func NewReadOnlyHook(r git.Runner, dir string) *ReadOnlyHook {
	return &ReadOnlyHook{git: r, dir: dir}
}

// Run resolves the patterns against tracked files and clears their write bits.
func (h *ReadOnlyHook) Run(ctx context.Context, patterns []string) *ReadOnlyResult {
	logger := zerolog.Ctx(ctx).With().Str("hook", "readonly").Str("stage", constants.HookStagePreCommit).Logger()
	result := &ReadOnlyResult{}

	if len(patterns) == 0 {
		logger.Debug().Msg("no patterns configured")
		return result
	}

	files, err := h.git.ListTrackedFiles(ctx, patterns)
	if err != nil {
		logger.Warn().Err(err).Strs("patterns", patterns).Msg("could not list tracked files")
		return result
	}

	for _, file := range files {
		path := file
		if h.dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(h.dir, file)
		}

		switch changed, err := clearWriteBits(path); {
		case stderrors.Is(err, fs.ErrNotExist):
			result.Missing = append(result.Missing, file)
		case err != nil:
			logger.Warn().Err(err).Str("file", file).Msg("could not remove write permission")
			result.Failed = append(result.Failed, file)
		case changed:
			logger.Debug().Str("file", file).Msg("write permission removed")
			result.Changed = append(result.Changed, file)
		default:
			result.Unchanged = append(result.Unchanged, file)
		}
	}

	logger.Debug().
		Int("changed", len(result.Changed)).
		Int("unchanged", len(result.Unchanged)).
		Int("missing", len(result.Missing)).
		Int("failed", len(result.Failed)).
		Msg("readonly done")

	return result
}

// clearWriteBits removes all write bits from path. Symlinks are left alone
// because chmod would follow them.
func clearWriteBits(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return false, nil
	}

	perm := info.Mode().Perm()
	if perm&writeBits == 0 {
		return false, nil
	}
	if err := os.Chmod(path, perm&^writeBits); err != nil {
		return false, err
	}
	return true, nil
}
