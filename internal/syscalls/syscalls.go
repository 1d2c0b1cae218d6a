//go:build linux || darwin

// Package syscalls contains thin wrappers around the operating system calls
// used for reading directory streams, so that they can be substituted in tests.
package syscalls

import (
	"golang.org/x/sys/unix"
)

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Open wraps around [unix.Open].
func (*Unix) Open(path string, mode int, perm uint32) (int, error) {
	return unix.Open(path, mode, perm)
}

// ReadDirent wraps around [unix.ReadDirent].
func (*Unix) ReadDirent(fd int, buf []byte) (int, error) {
	return unix.ReadDirent(fd, buf)
}

// Close wraps around [unix.Close].
func (*Unix) Close(fd int) error {
	return unix.Close(fd)
}
