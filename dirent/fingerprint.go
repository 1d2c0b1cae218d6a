package dirent

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/zeebo/blake3"
)

// FingerprintSize is the size in bytes of a listing fingerprint.
const FingerprintSize = 32

// Fingerprint returns a BLAKE3 digest over the fixed-layout records of
// entries. The records are hashed in name order, so two listings of the same
// directory compare equal regardless of the order the stream produced them.
func Fingerprint(entries []Entry) ([FingerprintSize]byte, error) {
	var sum [FingerprintSize]byte

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		return bytes.Compare(a.Name[:], b.Name[:])
	})

	hasher := blake3.New()
	buf := make([]byte, 0, RecordSize)

	for i := range sorted {
		rec, err := sorted[i].AppendBinary(buf[:0])
		if err != nil {
			return sum, fmt.Errorf("(dirent-fingerprint) %w", err)
		}
		if _, err := hasher.Write(rec); err != nil {
			return sum, fmt.Errorf("(dirent-fingerprint) %w", err)
		}
	}

	copy(sum[:], hasher.Sum(nil))

	return sum, nil
}
