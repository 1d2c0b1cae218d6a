// Package platform answers coarse questions about the running platform:
// operating system family, byte order, user locale and operating system
// version. All queries are free of side effects and safe for concurrent use.
//
// Facts that the running operating system does not provide are reported as
// unavailable, never as an error.
package platform

import (
	"runtime"
	"sync"
	"unsafe"
)

// Version is an operating system version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Facts is a snapshot of all platform facts. It is recomputed on every call
// to [Current].
type Facts struct {
	IsWindows      bool
	IsMac          bool
	IsLittleEndian bool

	// UserLanguage and UserCountry are ISO 639 and ISO 3166 codes. They are
	// only available on Windows and empty elsewhere.
	UserLanguage string
	UserCountry  string

	// OSVersion is only available on macOS, as signalled by HasOSVersion.
	OSVersion    Version
	HasOSVersion bool

	// TempDirectory is only available on macOS, as signalled by
	// HasTempDirectory.
	TempDirectory    string
	HasTempDirectory bool
}

// provider is implemented once per operating system family.
type provider interface {
	userLanguage() string
	userCountry() string
	osVersion() (Version, bool)
	tempDirectory() (string, bool)
}

//nolint:gochecknoglobals
var littleEndian = sync.OnceValue(probeLittleEndian)

// probeLittleEndian writes a known multi-byte value and inspects the byte
// stored at its lowest address.
func probeLittleEndian() bool {
	n := uint32(1)

	return *(*byte)(unsafe.Pointer(&n)) == 1
}

// IsWindows reports whether the program was built for Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// IsMac reports whether the program was built for macOS.
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

// IsLittleEndian reports whether the machine stores the least significant
// byte first.
func IsLittleEndian() bool {
	return littleEndian()
}

// UserLanguage returns the user's ISO 639 language code, or "" where the
// operating system provides none.
func UserLanguage() string {
	return current.userLanguage()
}

// UserCountry returns the user's ISO 3166 country code, or "" where the
// operating system provides none.
func UserCountry() string {
	return current.userCountry()
}

// OSVersion returns the operating system version. The second result is false
// where it is unavailable.
func OSVersion() (Version, bool) {
	return current.osVersion()
}

// TempDirectory returns the system's per-user temporary directory. The
// second result is false where it is unavailable.
func TempDirectory() (string, bool) {
	return current.tempDirectory()
}

// Current gathers all facts.
func Current() Facts {
	f := Facts{
		IsWindows:      IsWindows(),
		IsMac:          IsMac(),
		IsLittleEndian: IsLittleEndian(),
		UserLanguage:   UserLanguage(),
		UserCountry:    UserCountry(),
	}
	f.OSVersion, f.HasOSVersion = OSVersion()
	f.TempDirectory, f.HasTempDirectory = TempDirectory()

	return f
}
