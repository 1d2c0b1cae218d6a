package dirent

import (
	"errors"
	"io"
)

// ReadAll opens the directory at path, reads every entry in stream order and
// closes it again on all return paths. With skipDots set, the "." and ".."
// entries are left out.
func ReadAll(path string, skipDots bool) ([]Entry, error) {
	return readAll(Open, path, skipDots)
}

func readAll(open func(string) (*Dir, error), path string, skipDots bool) (entries []Entry, retErr error) {
	d, err := open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := d.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	for {
		e, err := d.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		if skipDots && e.IsDot() {
			continue
		}
		entries = append(entries, e)
	}
}
