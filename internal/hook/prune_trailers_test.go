package hook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/githooks/internal/errors"
	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/testutil"
)

func TestPruneHook_Run(t *testing.T) {
	runner := &mockRunner{}
	msg := newMsgFile(t, "Subject\n")

	require.NoError(t, NewPruneHook(runner).Run(context.Background(), msg))
	assert.Equal(t, []string{msg}, runner.trimmed)
}

func TestPruneHook_Run_MissingFile(t *testing.T) {
	runner := &mockRunner{}

	err := NewPruneHook(runner).Run(context.Background(), filepath.Join(t.TempDir(), "nope"))

	require.ErrorIs(t, err, errors.ErrCommitMsgFile)
	assert.Empty(t, runner.trimmed)
}

func TestPruneHook_Run_GitFailure(t *testing.T) {
	runner := &mockRunner{trimErr: testutil.ErrMockGitFailed}

	err := NewPruneHook(runner).Run(context.Background(), newMsgFile(t, "Subject\n"))

	require.ErrorIs(t, err, testutil.ErrMockGitFailed)
	assert.Contains(t, err.Error(), "pruning empty trailers")
}

func TestPruneHook_Integration(t *testing.T) {
	dir := createTestGitRepo(t, "main")
	msg := newMsgFile(t, "Subject\n\nBody.\n\nRefs: \nReviewed-by: Jane <jane@example.com>\n")

	require.NoError(t, NewPruneHook(git.NewRunner(dir)).Run(context.Background(), msg))

	assert.Equal(t, "Subject\n\nBody.\n\nReviewed-by: Jane <jane@example.com>\n", readFile(t, msg))
}
