package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/githooks/internal/config"
	"github.com/mrz1836/githooks/internal/errors"
	"github.com/mrz1836/githooks/internal/git"
)

// loadConfig resolves the configuration the way every hook sees it.
// bind attaches command flags to the loader and may be nil.
// Errors are configuration errors and map to exit code 2.
func loadConfig(ctx context.Context, runner git.Runner, bind func(*config.Loader) error) (*config.Config, *config.Loader, error) {
	loader, err := newProjectLoader(ctx, runner, bind)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, errors.NewExitCode2Error(err)
	}
	return cfg, loader, nil
}

// loadReadOnlyConfig resolves only the readonly section. Settings of the
// other hooks are not decoded or validated.
func loadReadOnlyConfig(ctx context.Context, runner git.Runner) (config.ReadOnlyConfig, error) {
	loader, err := newProjectLoader(ctx, runner, nil)
	if err != nil {
		return config.ReadOnlyConfig{}, err
	}
	return loader.LoadReadOnly(ctx)
}

// newProjectLoader creates a loader with flags bound and the project config merged.
func newProjectLoader(ctx context.Context, runner git.Runner, bind func(*config.Loader) error) (*config.Loader, error) {
	loader := config.NewLoader()
	if bind != nil {
		if err := bind(loader); err != nil {
			return nil, errors.NewExitCode2Error(err)
		}
	}

	top, err := runner.TopLevel(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("not inside a work tree, skipping project config")
	} else if err := loader.ReadProjectConfig(ctx, config.ProjectConfigPath(top)); err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return loader, nil
}
