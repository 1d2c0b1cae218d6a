package dirent

import (
	"encoding/binary"
	"fmt"
)

// The encoded record layout, all integers little-endian:
//
//	offset  size  field
//	     0     8  inode
//	     8   256  name, zero-terminated
//	   264     2  type ([EntryType] code, not the raw OS value)
//	   266     2  record length, -1 if absent
//	   268     2  name length, -1 if absent
const (
	recordInodeOff  = 0
	recordNameOff   = recordInodeOff + 8
	recordTypeOff   = recordNameOff + NameMax + 1
	recordReclenOff = recordTypeOff + 2
	recordNamlenOff = recordReclenOff + 2

	// RecordSize is the size in bytes of an encoded [Entry].
	RecordSize = recordNamlenOff + 2
)

const absentField = 0xFFFF

// MarshalBinary encodes the entry into its fixed-size record.
func (e *Entry) MarshalBinary() ([]byte, error) {
	return e.AppendBinary(make([]byte, 0, RecordSize))
}

// AppendBinary appends the fixed-size record of the entry to buf.
func (e *Entry) AppendBinary(buf []byte) ([]byte, error) {
	buf = binary.LittleEndian.AppendUint64(buf, e.Inode)

	name := e.Name
	name[NameMax] = 0
	buf = append(buf, name[:]...)

	buf = binary.LittleEndian.AppendUint16(buf, uint16(e.Type))
	buf = binary.LittleEndian.AppendUint16(buf, optionalField(e.RecordLength, e.HasRecordLength))
	buf = binary.LittleEndian.AppendUint16(buf, optionalField(e.NameLength, e.HasNameLength))

	return buf, nil
}

// UnmarshalBinary decodes a fixed-size record produced by
// [Entry.MarshalBinary]. Truncated is not part of the record and is reset.
func (e *Entry) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("(dirent-record) %w: size %d, want %d", ErrInvalidRecord, len(data), RecordSize)
	}

	if data[recordTypeOff-1] != 0 {
		return fmt.Errorf("(dirent-record) %w: name is not terminated", ErrInvalidRecord)
	}

	typ := binary.LittleEndian.Uint16(data[recordTypeOff:])
	if typ > uint16(Whiteout) {
		return fmt.Errorf("(dirent-record) %w: entry type %d", ErrInvalidRecord, typ)
	}

	var out Entry
	out.Inode = binary.LittleEndian.Uint64(data[recordInodeOff:])
	copy(out.Name[:], data[recordNameOff:recordTypeOff])
	out.Type = EntryType(typ)

	if v := binary.LittleEndian.Uint16(data[recordReclenOff:]); v != absentField {
		out.RecordLength, out.HasRecordLength = v, true
	}
	if v := binary.LittleEndian.Uint16(data[recordNamlenOff:]); v != absentField {
		out.NameLength, out.HasNameLength = v, true
	}

	*e = out

	return nil
}

func optionalField(v uint16, present bool) uint16 {
	if !present {
		return absentField
	}

	return v
}
