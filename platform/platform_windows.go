package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	localeUserDefault      = 0x0400
	localeSISO639LangName  = 0x0059
	localeSISO3166CtryName = 0x005A

	// Buffer size in characters, including the terminator.
	localeBufLen = 9
)

//nolint:gochecknoglobals
var (
	current provider = windowsProvider{}

	procGetLocaleInfoW = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetLocaleInfoW")
)

type windowsProvider struct{}

func (windowsProvider) userLanguage() string {
	return getLocaleInfo(localeSISO639LangName)
}

func (windowsProvider) userCountry() string {
	return getLocaleInfo(localeSISO3166CtryName)
}

func (windowsProvider) osVersion() (Version, bool) { return Version{}, false }

func (windowsProvider) tempDirectory() (string, bool) { return "", false }

// getLocaleInfo queries the user's default locale. Failures yield "".
func getLocaleInfo(lcType uint32) string {
	if procGetLocaleInfoW.Find() != nil {
		return ""
	}

	var buf [localeBufLen]uint16

	r, _, _ := procGetLocaleInfoW.Call(
		uintptr(localeUserDefault),
		uintptr(lcType),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if r == 0 {
		return ""
	}

	return windows.UTF16ToString(buf[:])
}
