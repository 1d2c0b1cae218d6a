//go:build linux || darwin

package dirent

import "golang.org/x/sys/unix"

// rawEntryTypes maps the build target's DT_* constants to [EntryType].
//
//nolint:gochecknoglobals
var rawEntryTypes = map[uint8]EntryType{
	unix.DT_UNKNOWN: Unknown,
	unix.DT_FIFO:    FIFO,
	unix.DT_CHR:     CharDevice,
	unix.DT_DIR:     Directory,
	unix.DT_BLK:     BlockDevice,
	unix.DT_REG:     Regular,
	unix.DT_LNK:     Symlink,
	unix.DT_SOCK:    Socket,
	unix.DT_WHT:     Whiteout,
}
