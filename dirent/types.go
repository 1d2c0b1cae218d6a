package dirent

// EntryType is the portable classification of a directory entry, as reported
// by the directory stream without following symbolic links.
type EntryType uint8

const (
	Unknown EntryType = iota
	FIFO
	CharDevice
	Directory
	BlockDevice
	Regular
	Symlink
	Socket
	Whiteout
)

var entryTypeNames = [...]string{
	Unknown:     "unknown",
	FIFO:        "fifo",
	CharDevice:  "chardev",
	Directory:   "dir",
	BlockDevice: "blockdev",
	Regular:     "regular",
	Symlink:     "symlink",
	Socket:      "socket",
	Whiteout:    "whiteout",
}

func (t EntryType) String() string {
	if int(t) < len(entryTypeNames) {
		return entryTypeNames[t]
	}

	return entryTypeNames[Unknown]
}

// ParseEntryType resolves one of the names unknown, fifo, chardev, dir,
// blockdev, regular, symlink, socket or whiteout into an [EntryType].
func ParseEntryType(name string) (EntryType, bool) {
	for i, n := range entryTypeNames {
		if n == name {
			return EntryType(i), true
		}
	}

	return Unknown, false
}

// EntryTypeConstant returns the operating system's own numeric code for t.
// The codes differ between operating systems and are taken from the build
// target's headers. The second result is false where the operating system
// has no such code.
func EntryTypeConstant(t EntryType) (int, bool) {
	for raw, et := range rawEntryTypes {
		if et == t {
			return int(raw), true
		}
	}

	return 0, false
}

// entryTypeFromRaw translates a raw d_type value. Values the table does not
// know map to [Unknown].
func entryTypeFromRaw(raw uint8) EntryType {
	if t, ok := rawEntryTypes[raw]; ok {
		return t
	}

	return Unknown
}
