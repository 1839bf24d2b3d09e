package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrz1836/githooks/internal/git"
	"github.com/mrz1836/githooks/internal/testutil"
)

// trailerCall records one AddTrailer invocation.
type trailerCall struct {
	file  string
	key   string
	value string
}

// mockRunner is a scripted git.Runner.
type mockRunner struct {
	branch    string
	branchErr error
	addErr    error
	trimErr   error
	files     []string
	listErr   error

	trailers []trailerCall
	trimmed  []string
	patterns []string
}

var _ git.Runner = (*mockRunner)(nil)

func (m *mockRunner) CurrentBranch(context.Context) (string, error) {
	return m.branch, m.branchErr
}

func (m *mockRunner) AddTrailer(_ context.Context, file, key, value string) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.trailers = append(m.trailers, trailerCall{file: file, key: key, value: value})
	return nil
}

func (m *mockRunner) TrimEmptyTrailers(_ context.Context, file string) error {
	if m.trimErr != nil {
		return m.trimErr
	}
	m.trimmed = append(m.trimmed, file)
	return nil
}

func (m *mockRunner) ListTrackedFiles(_ context.Context, patterns []string) ([]string, error) {
	m.patterns = patterns
	return m.files, m.listErr
}

func (m *mockRunner) TopLevel(context.Context) (string, error) {
	return "", nil
}

// values returns the trailer values passed to AddTrailer.
func (m *mockRunner) values() []string {
	var out []string
	for _, c := range m.trailers {
		out = append(out, c.value)
	}
	return out
}

// createTestGitRepo initializes a temporary git repository on the given branch.
func createTestGitRepo(t *testing.T, branch string) string {
	t.Helper()
	return testutil.InitRepo(t, branch)
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	testutil.RunGit(t, dir, args...)
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	testutil.WriteFile(t, filepath.Dir(path), filepath.Base(path), content, perm)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	return testutil.ReadFile(t, path)
}

// skipIfRoot skips permission tests that root would pass anyway.
func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}
