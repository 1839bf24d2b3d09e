package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/githooks/internal/constants"
)

// ProjectConfigPath returns the project config file path for a repository root.
func ProjectConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, constants.ProjectConfigFileName)
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
