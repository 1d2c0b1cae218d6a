//go:build linux || darwin

package dirent

import (
	"bytes"
	"encoding/binary"
	"io"
	"runtime"
	"testing"

	"github.com/desertwitch/direntry/dirent/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// buildDirent lays out one dirent record the way the build target's
// operating system does.
func buildDirent(ino uint64, typ uint8, name []byte) []byte {
	reclen := (direntNameOff + len(name) + 1 + 7) &^ 7
	rec := make([]byte, reclen)

	binary.NativeEndian.PutUint64(rec[direntInoOff:], ino)
	binary.NativeEndian.PutUint16(rec[direntReclenOff:], uint16(reclen)) //nolint:gosec
	rec[direntTypeOff] = typ
	copy(rec[direntNameOff:], name)
	setTestNamlen(rec, len(name))

	return rec
}

// TestParseDirent_Regular tests decoding a plain record.
func TestParseDirent_Regular(t *testing.T) {
	t.Parallel()

	rec := buildDirent(42, unix.DT_REG, []byte("a.txt"))

	e, n, err := parseDirent(rec)
	require.NoError(t, err)

	assert.Equal(t, len(rec), n)
	assert.Equal(t, uint64(42), e.Inode)
	assert.Equal(t, "a.txt", e.NameString())
	assert.Equal(t, Regular, e.Type)
	assert.False(t, e.Truncated)
	assert.True(t, e.HasRecordLength)
	assert.Equal(t, uint16(len(rec)), e.RecordLength) //nolint:gosec

	if runtime.GOOS == "darwin" {
		assert.True(t, e.HasNameLength)
		assert.Equal(t, uint16(5), e.NameLength)
	} else {
		assert.False(t, e.HasNameLength)
	}
}

// TestParseDirent_LongName tests that names over the fixed capacity are
// truncated and terminated.
func TestParseDirent_LongName(t *testing.T) {
	t.Parallel()

	long := bytes.Repeat([]byte("n"), 300)
	rec := buildDirent(7, unix.DT_DIR, long)

	e, _, err := parseDirent(rec)
	require.NoError(t, err)

	assert.True(t, e.Truncated)
	assert.Len(t, e.NameString(), NameMax)
	assert.Equal(t, string(long[:NameMax]), e.NameString())
	assert.Equal(t, byte(0), e.Name[NameMax])
	assert.Equal(t, Directory, e.Type)
}

// TestParseDirent_UnknownRawType tests that raw codes outside the table
// decode as Unknown.
func TestParseDirent_UnknownRawType(t *testing.T) {
	t.Parallel()

	e, _, err := parseDirent(buildDirent(1, 0xEE, []byte("odd")))
	require.NoError(t, err)
	assert.Equal(t, Unknown, e.Type)
}

// TestParseDirent_Invalid tests the rejection of malformed records.
func TestParseDirent_Invalid(t *testing.T) {
	t.Parallel()

	rec := buildDirent(1, unix.DT_REG, []byte("x"))

	tests := []struct {
		name string
		buf  []byte
	}{
		{"ShortHeader", rec[:direntNameOff-1]},
		{"RecordLongerThanBuffer", rec[:len(rec)-1]},
		{"RecordShorterThanHeader", func() []byte {
			b := bytes.Clone(rec)
			binary.NativeEndian.PutUint16(b[direntReclenOff:], 1)

			return b
		}()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseDirent(tt.buf)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

// TestNext_StreamOfRecords tests iterating over several records delivered by
// one read, skipping records without a serial number.
func TestNext_StreamOfRecords(t *testing.T) {
	t.Parallel()

	var stream []byte
	stream = append(stream, buildDirent(10, unix.DT_REG, []byte("one"))...)
	stream = append(stream, buildDirent(0, unix.DT_REG, []byte("deleted"))...)
	stream = append(stream, buildDirent(11, unix.DT_LNK, []byte("two"))...)

	mockUnix := mocks.NewUnixProvider(t)
	mockUnix.On("Open", "/srv/data", mock.Anything, uint32(0)).Return(9, nil)
	mockUnix.On("ReadDirent", 9, mock.Anything).Return(func(_ int, buf []byte) (int, error) {
		return copy(buf, stream), nil
	}).Once()
	mockUnix.On("ReadDirent", 9, mock.Anything).Return(0, nil)
	mockUnix.On("Close", 9).Return(nil).Once()

	d, err := NewReader(mockUnix).Open("/srv/data")
	require.NoError(t, err)
	defer d.Close()

	e, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", e.NameString())
	assert.Equal(t, Regular, e.Type)

	e, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", e.NameString())
	assert.Equal(t, Symlink, e.Type)
	assert.Equal(t, uint64(11), e.Inode)

	_, err = d.Next()
	require.ErrorIs(t, err, io.EOF)
}

// TestNext_CorruptRecord tests that a malformed record surfaces as an error.
func TestNext_CorruptRecord(t *testing.T) {
	t.Parallel()

	mockUnix := mocks.NewUnixProvider(t)
	mockUnix.On("Open", "/srv/data", mock.Anything, uint32(0)).Return(9, nil)
	mockUnix.On("ReadDirent", 9, mock.Anything).Return(func(_ int, buf []byte) (int, error) {
		return copy(buf, []byte{1, 2, 3}), nil
	}).Once()
	mockUnix.On("Close", 9).Return(nil).Once()

	d, err := NewReader(mockUnix).Open("/srv/data")
	require.NoError(t, err)
	defer d.Close()

	_, err = d.Next()
	require.ErrorIs(t, err, ErrInvalidRecord)
}
