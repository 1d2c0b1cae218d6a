package dirent

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

const direntNamlenOff = int(unsafe.Offsetof(unix.Dirent{}.Namlen))

// direntNamlen returns the d_namlen field of a Darwin dirent record.
func direntNamlen(rec []byte) (int, bool) {
	return int(binary.NativeEndian.Uint16(rec[direntNamlenOff:])), true
}
