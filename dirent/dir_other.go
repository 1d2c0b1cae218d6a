//go:build !linux && !darwin

package dirent

import (
	"errors"
	"fmt"
)

// Dir is an open directory stream. Directory streams are not available on
// this operating system.
type Dir struct{}

// Open always fails with [errors.ErrUnsupported] on this operating system.
func Open(path string) (*Dir, error) {
	return nil, fmt.Errorf("(dirent-open) %s: %w", path, errors.ErrUnsupported)
}

// Next always fails with [ErrClosed].
func (*Dir) Next() (Entry, error) {
	return Entry{}, ErrClosed
}

// Close is a no-op.
func (*Dir) Close() error {
	return nil
}
