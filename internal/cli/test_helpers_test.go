package cli

// This file contains test utilities for testing CLI commands.
// These helpers are only available in test files (*_test.go).

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/githooks/internal/config"
	"github.com/mrz1836/githooks/internal/constants"
	"github.com/mrz1836/githooks/internal/testutil"
)

// commandResult captures what a command invocation produced.
type commandResult struct {
	stdout string
	stderr string
	log    string
	err    error
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) commandResult {
	t.Helper()

	var stdout, stderr, logs bytes.Buffer
	flags := &GlobalFlags{logOutput: &logs}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	flags.closeLogger()

	return commandResult{stdout: stdout.String(), stderr: stderr.String(), log: logs.String(), err: err}
}

// clearHookEnv unsets every environment variable the hooks read.
func clearHookEnv(t *testing.T) {
	t.Helper()
	for _, key := range append(append([]string{}, config.RefKeys...), config.KeyReadOnlyPattern) {
		t.Setenv(config.EnvName(key), "")
	}
	t.Setenv(constants.EnvLogFile, "")
	t.Setenv("GITHOOKS_VERBOSE", "")
	t.Setenv("GITHOOKS_QUIET", "")
}

// createTestGitRepo initializes a git repository on branch and makes it the
// working directory for the rest of the test.
func createTestGitRepo(t *testing.T, branch string) string {
	t.Helper()
	dir := testutil.InitRepo(t, branch)
	chdir(t, dir)
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	testutil.RunGit(t, dir, args...)
}

// writeMsgFile writes a commit message file outside the repository.
func writeMsgFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	return testutil.ReadFile(t, path)
}

// chdir changes the working directory to dir and restores the previous
// working directory when the test finishes (equivalent of testing.T.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
