package dirent

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrNotFound is an error that occurs when the directory to be opened does
	// not exist (ENOENT).
	ErrNotFound = errors.New("no such directory")

	// ErrPermissionDenied is an error that occurs when access to the directory
	// is refused by the operating system (EACCES, EPERM).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotDirectory is an error that occurs when the path to be opened
	// exists but is not a directory (ENOTDIR).
	ErrNotDirectory = errors.New("not a directory")

	// ErrClosed is an error that occurs when a [Dir] is used after it was
	// closed.
	ErrClosed = errors.New("directory stream is closed")

	// ErrInvalidRecord is an error that occurs when a fixed-layout record or
	// an operating system directory entry cannot be decoded.
	ErrInvalidRecord = errors.New("invalid directory record")
)

// OSError carries the raw operating system error code of a failed directory
// operation. It is always reachable with [errors.As], including when the
// error was also classified as [ErrNotFound] or [ErrPermissionDenied].
type OSError struct {
	Op    string
	Path  string
	Errno syscall.Errno
}

func (e *OSError) Error() string {
	return fmt.Sprintf("%s %s: %s (errno %d)", e.Op, e.Path, e.Errno.Error(), int(e.Errno))
}

func (e *OSError) Unwrap() error {
	return e.Errno
}

// wrapErrno classifies an operating system error into the package taxonomy.
// Errors which are not an errno are returned wrapped but unclassified.
func wrapErrno(op, path string, err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return fmt.Errorf("(dirent-%s) %s: %w", op, path, err)
	}

	osErr := &OSError{Op: op, Path: path, Errno: errno}

	switch errno {
	case syscall.ENOENT:
		return fmt.Errorf("(dirent-%s) %w: %w", op, ErrNotFound, osErr)
	case syscall.EACCES, syscall.EPERM:
		return fmt.Errorf("(dirent-%s) %w: %w", op, ErrPermissionDenied, osErr)
	case syscall.ENOTDIR:
		return fmt.Errorf("(dirent-%s) %w: %w", op, ErrNotDirectory, osErr)
	default:
		return fmt.Errorf("(dirent-%s) %w", op, osErr)
	}
}
