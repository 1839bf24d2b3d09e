// Package git provides the git operations the hooks depend on.
// This file provides shared git command execution utilities.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// RunCommand executes a git command in the specified directory and returns its output.
// An empty workDir runs git in the current directory.
// All errors are wrapped with ErrGitOperation and include stderr for debugging;
// the underlying *exec.ExitError stays reachable through errors.As.
func RunCommand(ctx context.Context, workDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	zerolog.Ctx(ctx).Debug().Strs("args", args).Str("dir", workDir).Msg("running git")

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("git %s failed: %s: %w: %w", args[0], strings.TrimSpace(stderr.String()), ErrGitOperation, err)
		}
		return "", fmt.Errorf("git %s failed: %w: %w", args[0], ErrGitOperation, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
