package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hookerrors "github.com/mrz1836/githooks/internal/errors"
)

// Compile-time check that CLIRunner satisfies Runner.
var _ Runner = (*CLIRunner)(nil)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(data)
}

func TestShortBranchName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"refs/heads/main", "main"},
		{"refs/heads/feature/1234-login", "feature/1234-login"},
		{"feature/1234-login", "feature/1234-login"},
		{"refs/heads/refs/heads/x", "refs/heads/x"},
		{"  refs/heads/dev\n", "dev"},
	}

	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			assert.Equal(t, tc.want, ShortBranchName(tc.ref))
		})
	}
}

func TestCLIRunner_CurrentBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("named branch without commits", func(t *testing.T) {
		dir := createTestGitRepo(t)
		runGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/feature/4711-search")

		branch, err := NewRunner(dir).CurrentBranch(ctx)

		require.NoError(t, err)
		assert.Equal(t, "feature/4711-search", branch)
	})

	t.Run("detached HEAD", func(t *testing.T) {
		dir := createTestGitRepo(t)
		writeFile(t, filepath.Join(dir, "a.txt"), "a\n")
		runGit(t, dir, "add", "a.txt")
		runGit(t, dir, "commit", "-q", "-m", "initial")
		runGit(t, dir, "checkout", "-q", "--detach")

		_, err := NewRunner(dir).CurrentBranch(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotOnBranch)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := NewRunner(t.TempDir()).CurrentBranch(ctx)

		require.Error(t, err)
		require.ErrorIs(t, err, hookerrors.ErrGitOperation)
		assert.NotErrorIs(t, err, ErrNotOnBranch)
	})
}

func TestCLIRunner_AddTrailer(t *testing.T) {
	ctx := context.Background()
	dir := createTestGitRepo(t)
	msg := filepath.Join(dir, "COMMIT_EDITMSG")
	writeFile(t, msg, "Add search\n\nLonger description.\n")
	r := NewRunner(dir)

	require.NoError(t, r.AddTrailer(ctx, msg, "Refs", "#4711"))
	require.NoError(t, r.AddTrailer(ctx, msg, "Refs", "#4712"))
	// identical pair is not duplicated
	require.NoError(t, r.AddTrailer(ctx, msg, "Refs", "#4711"))

	assert.Equal(t, "Add search\n\nLonger description.\n\nRefs: #4711\nRefs: #4712\n", readFile(t, msg))
}

func TestCLIRunner_AddTrailer_EmptyKey(t *testing.T) {
	err := NewRunner(t.TempDir()).AddTrailer(context.Background(), "msg", "", "#1")

	require.ErrorIs(t, err, hookerrors.ErrEmptyValue)
}

func TestCLIRunner_AddTrailer_MissingFile(t *testing.T) {
	dir := createTestGitRepo(t)

	err := NewRunner(dir).AddTrailer(context.Background(), filepath.Join(dir, "missing"), "Refs", "#1")

	require.ErrorIs(t, err, hookerrors.ErrGitOperation)
}

func TestCLIRunner_TrimEmptyTrailers(t *testing.T) {
	ctx := context.Background()
	dir := createTestGitRepo(t)
	msg := filepath.Join(dir, "COMMIT_EDITMSG")
	writeFile(t, msg, "Fix crash\n\nRefs: #123\nReviewed-by: \nSigned-off-by: Test User <test@example.com>\n")

	require.NoError(t, NewRunner(dir).TrimEmptyTrailers(ctx, msg))

	content := readFile(t, msg)
	assert.NotContains(t, content, "Reviewed-by")
	assert.Contains(t, content, "Refs: #123\n")
	assert.Contains(t, content, "Signed-off-by: Test User <test@example.com>\n")
}

func TestCLIRunner_ListTrackedFiles(t *testing.T) {
	ctx := context.Background()
	dir := createTestGitRepo(t)
	writeFile(t, filepath.Join(dir, "vendor", "lib.go"), "package lib\n")
	writeFile(t, filepath.Join(dir, "vendor", "sub", "deep.go"), "package sub\n")
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "untracked.go"), "package main\n")
	runGit(t, dir, "add", "vendor", "main.go")
	r := NewRunner(dir)

	t.Run("glob matches tracked files only", func(t *testing.T) {
		files, err := r.ListTrackedFiles(ctx, []string{"*.go"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"main.go", "vendor/lib.go", "vendor/sub/deep.go"}, files)
	})

	t.Run("directory pathspec", func(t *testing.T) {
		files, err := r.ListTrackedFiles(ctx, []string{"vendor"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"vendor/lib.go", "vendor/sub/deep.go"}, files)
	})

	t.Run("no match", func(t *testing.T) {
		files, err := r.ListTrackedFiles(ctx, []string{"*.rs"})

		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("no patterns", func(t *testing.T) {
		files, err := r.ListTrackedFiles(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestCLIRunner_TopLevel(t *testing.T) {
	dir := createTestGitRepo(t)
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	top, err := NewRunner(sub).TopLevel(context.Background())

	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(top)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSplitNUL(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitNUL("a\x00b c\x00"))
	assert.Empty(t, splitNUL(""))
}
