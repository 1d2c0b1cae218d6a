package dirent

import "bytes"

// direntNamlen returns the length of the zero-terminated name in a Linux
// dirent record. Linux does not report the name length itself, so the
// second result is always false.
func direntNamlen(rec []byte) (int, bool) {
	name := rec[direntNameOff:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		return i, false
	}

	return len(name), false
}
