package testutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// InitRepo creates a git repository in a temporary directory with HEAD
// pointing at branch. The branch has no commits.
func InitRepo(t testing.TB, branch string) string {
	t.Helper()
	dir := t.TempDir()

	RunGit(t, dir, "init", "-q")
	RunGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/"+branch)
	RunGit(t, dir, "config", "user.email", "test@example.com")
	RunGit(t, dir, "config", "user.name", "Test User")

	return dir
}

// RunGit runs a git command in dir and fails the test on error.
func RunGit(t testing.TB, dir string, args ...string) string {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", args...) // #nosec G204 -- test helper
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

// WriteFile writes content to dir/name with the given permissions,
// creating parent directories as needed.
func WriteFile(t testing.TB, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	// WriteFile applies the umask; set the exact mode.
	require.NoError(t, os.Chmod(path, perm))
	return path
}

// ReadFile returns the content of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(data)
}
