//go:build windows

package hook

import "os"

// writable reports whether path can be opened for writing.
func writable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0) //nolint:gosec // path comes from git
	if err != nil {
		return err
	}
	return f.Close()
}
