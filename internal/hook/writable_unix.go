//go:build unix

package hook

import "golang.org/x/sys/unix"

// writable reports whether the real user may write to path.
// Root passes for any mode, the same as it would when git rewrites the file.
func writable(path string) error {
	return unix.Access(path, unix.W_OK)
}
