package dirent

import (
	"bytes"
)

// NameMax is the number of usable bytes in [Entry.Name]. One more byte is
// reserved for the terminating zero.
const NameMax = 255

// Entry is the fixed-layout record of a single directory entry.
//
// Name always holds a zero-terminated string. Names longer than [NameMax]
// bytes are truncated to their first [NameMax] bytes and Truncated is set;
// the lost suffix cannot be recovered from the record.
//
// RecordLength and NameLength are diagnostic values copied from the
// operating system where it exposes them, as indicated by HasRecordLength
// and HasNameLength. They are not authoritative.
type Entry struct {
	Inode           uint64
	Name            [NameMax + 1]byte
	Type            EntryType
	RecordLength    uint16
	NameLength      uint16
	HasRecordLength bool
	HasNameLength   bool
	Truncated       bool
}

// NameString returns the name up to its terminating zero.
func (e *Entry) NameString() string {
	if i := bytes.IndexByte(e.Name[:], 0); i >= 0 {
		return string(e.Name[:i])
	}

	return string(e.Name[:NameMax])
}

// IsDot reports whether the entry is one of the "." or ".." entries.
func (e *Entry) IsDot() bool {
	n := e.NameString()

	return n == "." || n == ".."
}

// setName copies name into the fixed buffer, truncating and terminating it.
func (e *Entry) setName(name []byte) {
	e.Name = [NameMax + 1]byte{}
	e.Truncated = len(name) > NameMax
	if e.Truncated {
		name = name[:NameMax]
	}
	copy(e.Name[:], name)
}
