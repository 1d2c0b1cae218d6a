//go:build linux || darwin

package dirent_test

import (
	"testing"

	"github.com/desertwitch/direntry/dirent"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// TestEntryTypeConstant tests that the raw codes are the build target's.
func TestEntryTypeConstant(t *testing.T) {
	t.Parallel()

	tests := map[dirent.EntryType]int{
		dirent.Unknown:     unix.DT_UNKNOWN,
		dirent.FIFO:        unix.DT_FIFO,
		dirent.CharDevice:  unix.DT_CHR,
		dirent.Directory:   unix.DT_DIR,
		dirent.BlockDevice: unix.DT_BLK,
		dirent.Regular:     unix.DT_REG,
		dirent.Symlink:     unix.DT_LNK,
		dirent.Socket:      unix.DT_SOCK,
		dirent.Whiteout:    unix.DT_WHT,
	}

	for typ, want := range tests {
		got, ok := dirent.EntryTypeConstant(typ)
		assert.True(t, ok, typ.String())
		assert.Equal(t, want, got, typ.String())
	}

	_, ok := dirent.EntryTypeConstant(dirent.EntryType(99))
	assert.False(t, ok)
}
