//go:build !unix

package sys

import (
	"errors"
	"syscall"
)

func Strerror(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno.Error()
	}
	return err.Error()
}
