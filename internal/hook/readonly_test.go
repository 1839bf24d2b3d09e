package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/testutil"
)

func modeOf(t *testing.T, path string) os.FileMode {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err)
	return info.Mode().Perm()
}

func TestReadOnlyHook_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "locked.lock"), "x", 0o644)
	writeFile(t, filepath.Join(dir, "already.lock"), "x", 0o444)
	runner := &mockRunner{files: []string{"locked.lock", "already.lock", "gone.lock"}}

	result := NewReadOnlyHook(runner, dir).Run(context.Background(), []string{"*.lock"})

	assert.Equal(t, []string{"*.lock"}, runner.patterns)
	assert.Equal(t, []string{"locked.lock"}, result.Changed)
	assert.Equal(t, []string{"already.lock"}, result.Unchanged)
	assert.Equal(t, []string{"gone.lock"}, result.Missing)
	assert.Empty(t, result.Failed)
	assert.Equal(t, os.FileMode(0o444), modeOf(t, filepath.Join(dir, "locked.lock")))
}

func TestReadOnlyHook_Run_NoPatterns(t *testing.T) {
	runner := &mockRunner{files: []string{"a"}}

	result := NewReadOnlyHook(runner, t.TempDir()).Run(context.Background(), nil)

	assert.Nil(t, runner.patterns)
	assert.Empty(t, result.Changed)
}

func TestReadOnlyHook_Run_ListFailureIsNotFatal(t *testing.T) {
	runner := &mockRunner{listErr: testutil.ErrMockGitFailed}

	result := NewReadOnlyHook(runner, t.TempDir()).Run(context.Background(), []string{"*.go"})

	require.NotNil(t, result)
	assert.Empty(t, result.Changed)
	assert.Empty(t, result.Failed)
}

func TestReadOnlyHook_Run_SkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	writeFile(t, target, "x", 0o644)
	require.NoError(t, os.Symlink("target.txt", filepath.Join(dir, "link.txt")))
	runner := &mockRunner{files: []string{"link.txt"}}

	result := NewReadOnlyHook(runner, dir).Run(context.Background(), []string{"link.txt"})

	assert.Equal(t, []string{"link.txt"}, result.Unchanged)
	assert.Equal(t, os.FileMode(0o644), modeOf(t, target))
}

func TestClearWriteBits_KeepsExecuteBits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.sh")
	writeFile(t, path, "#!/bin/sh\n", 0o775)

	changed, err := clearWriteBits(path)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, os.FileMode(0o555), modeOf(t, path))
}

func TestReadOnlyHook_Integration(t *testing.T) {
	dir := createTestGitRepo(t, "main")
	writeFile(t, filepath.Join(dir, "go.sum"), "sum\n", 0o644)
	writeFile(t, filepath.Join(dir, "vendor", "lib", "lib.go"), "package lib\n", 0o644)
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n", 0o644)
	writeFile(t, filepath.Join(dir, "untracked.sum"), "x\n", 0o644)
	runGit(t, dir, "add", "go.sum", "vendor", "main.go")

	result := NewReadOnlyHook(git.NewRunner(dir), dir).Run(context.Background(), []string{"*.sum", "vendor/**"})

	assert.ElementsMatch(t, []string{"go.sum", "vendor/lib/lib.go"}, result.Changed)
	assert.Equal(t, os.FileMode(0o444), modeOf(t, filepath.Join(dir, "go.sum")))
	assert.Equal(t, os.FileMode(0o444), modeOf(t, filepath.Join(dir, "vendor", "lib", "lib.go")))
	assert.Equal(t, os.FileMode(0o644), modeOf(t, filepath.Join(dir, "main.go")))
	assert.Equal(t, os.FileMode(0o644), modeOf(t, filepath.Join(dir, "untracked.sum")))

	again := NewReadOnlyHook(git.NewRunner(dir), dir).Run(context.Background(), []string{"*.sum", "vendor/**"})
	assert.Empty(t, again.Changed)
	assert.ElementsMatch(t, []string{"go.sum", "vendor/lib/lib.go"}, again.Unchanged)
}
