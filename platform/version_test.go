package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseVersion tests parsing of dotted version strings.
func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Version
		ok   bool
	}{
		{"14.2.1", Version{14, 2, 1}, true},
		{"13.0", Version{13, 0, 0}, true},
		{"15\n", Version{15, 0, 0}, true},
		{"", Version{}, false},
		{"1.2.3.4", Version{}, false},
		{"a.b", Version{}, false},
		{"10.-1", Version{}, false},
	}

	for _, tt := range tests {
		got, ok := parseVersion(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, "14.2.1", Version{14, 2, 1}.String())
}
