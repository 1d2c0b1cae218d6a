//go:build linux || darwin

package dirent

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/desertwitch/direntry/internal/syscalls"
	"golang.org/x/sys/unix"
)

const direntBufSize = 8192

// Offsets into the operating system's dirent record, taken from the build
// target's layout of [unix.Dirent].
const (
	direntInoOff    = int(unsafe.Offsetof(unix.Dirent{}.Ino))
	direntReclenOff = int(unsafe.Offsetof(unix.Dirent{}.Reclen))
	direntTypeOff   = int(unsafe.Offsetof(unix.Dirent{}.Type))
	direntNameOff   = int(unsafe.Offsetof(unix.Dirent{}.Name))
)

type unixProvider interface {
	Open(path string, mode int, perm uint32) (int, error)
	ReadDirent(fd int, buf []byte) (int, error)
	Close(fd int) error
}

// Reader opens directory streams through the given operating system calls.
type Reader struct {
	UnixOps unixProvider
}

// NewReader returns a pointer to a new [Reader].
func NewReader(unixOps unixProvider) *Reader {
	return &Reader{
		UnixOps: unixOps,
	}
}

//nolint:gochecknoglobals
var defaultReader = NewReader(&syscalls.Unix{})

// Dir is an open directory stream. It is owned by a single caller, which
// must release it with [Dir.Close].
type Dir struct {
	mu sync.Mutex

	ops  unixProvider
	path string
	fd   int
	buf  []byte
	todo []byte
}

// Open opens the directory at path for reading with the default [Reader].
func Open(path string) (*Dir, error) {
	return defaultReader.Open(path)
}

// Open opens the directory at path for reading. The returned error wraps
// [ErrNotFound], [ErrPermissionDenied] or [ErrNotDirectory] where the
// operating system reported such a condition, and always an [*OSError]
// holding the raw code.
func (r *Reader) Open(path string) (*Dir, error) {
	fd, err := r.UnixOps.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, wrapErrno("open", path, err)
	}

	return &Dir{
		ops:  r.UnixOps,
		path: path,
		fd:   fd,
		buf:  make([]byte, direntBufSize),
	}, nil
}

// Next advances the stream by one entry and returns it. When no entries
// remain it returns [io.EOF], which is never wrapped and never an
// [*OSError]. After [Dir.Close] it returns [ErrClosed].
//
// The "." and ".." entries are returned like any other entry.
func (d *Dir) Next() (Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return Entry{}, ErrClosed
	}

	for {
		if len(d.todo) == 0 {
			n, err := d.ops.ReadDirent(d.fd, d.buf)
			if err != nil {
				return Entry{}, wrapErrno("readdir", d.path, err)
			}
			if n <= 0 {
				return Entry{}, io.EOF
			}
			d.todo = d.buf[:n]
		}

		e, reclen, err := parseDirent(d.todo)
		if err != nil {
			d.todo = nil

			return Entry{}, fmt.Errorf("(dirent-readdir) %s: %w", d.path, err)
		}
		d.todo = d.todo[reclen:]

		if e.Inode == 0 {
			continue
		}

		if e.Truncated {
			slog.Debug("Truncated directory entry name", "path", d.path, "name", e.NameString())
		}

		return e, nil
	}
}

// Close releases the directory stream. Closing an already closed [Dir] is a
// no-op and returns nil.
func (d *Dir) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fd < 0 {
		return nil
	}

	fd := d.fd
	d.fd = -1
	d.todo = nil

	if err := d.ops.Close(fd); err != nil {
		return wrapErrno("close", d.path, err)
	}

	return nil
}

// parseDirent decodes the first operating system dirent record in buf and
// returns it together with the number of bytes it occupied.
func parseDirent(buf []byte) (Entry, int, error) {
	if len(buf) < direntNameOff {
		return Entry{}, 0, fmt.Errorf("%w: short header (%d bytes)", ErrInvalidRecord, len(buf))
	}

	reclen := int(binary.NativeEndian.Uint16(buf[direntReclenOff:]))
	if reclen < direntNameOff || reclen > len(buf) {
		return Entry{}, 0, fmt.Errorf("%w: record length %d", ErrInvalidRecord, reclen)
	}
	rec := buf[:reclen]

	namlen, reported := direntNamlen(rec)
	if direntNameOff+namlen > reclen {
		return Entry{}, 0, fmt.Errorf("%w: name length %d", ErrInvalidRecord, namlen)
	}

	e := Entry{
		Inode:           binary.NativeEndian.Uint64(rec[direntInoOff:]),
		Type:            entryTypeFromRaw(rec[direntTypeOff]),
		RecordLength:    uint16(reclen), //nolint:gosec
		HasRecordLength: true,
	}
	if reported {
		e.NameLength = uint16(namlen) //nolint:gosec
		e.HasNameLength = true
	}
	e.setName(rec[direntNameOff : direntNameOff+namlen])

	return e, reclen, nil
}

// ReadAll is [ReadAll] using the operating system calls of r.
func (r *Reader) ReadAll(path string, skipDots bool) ([]Entry, error) {
	return readAll(r.Open, path, skipDots)
}
