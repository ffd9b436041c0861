//go:build unix

package sys

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Strerror returns the symbolic name and description of the errno inside
// err, e.g. "ENOENT: no such file or directory". Errors without an errno
// come back as err.Error().
func Strerror(err error) string {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}
	if name := unix.ErrnoName(errno); name != "" {
		return name + ": " + errno.Error()
	}
	return errno.Error()
}
