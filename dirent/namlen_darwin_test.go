package dirent

import "encoding/binary"

func setTestNamlen(rec []byte, n int) {
	binary.NativeEndian.PutUint16(rec[direntNamlenOff:], uint16(n)) //nolint:gosec
}
