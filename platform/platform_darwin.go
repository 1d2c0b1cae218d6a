package platform

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var current provider = darwinProvider{}

type darwinProvider struct{}

func (darwinProvider) userLanguage() string { return "" }

func (darwinProvider) userCountry() string { return "" }

func (darwinProvider) osVersion() (Version, bool) {
	s, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return Version{}, false
	}

	return parseVersion(s)
}

func (darwinProvider) tempDirectory() (string, bool) {
	dir := os.Getenv("TMPDIR")
	if dir == "" {
		return "", false
	}

	return strings.TrimSuffix(dir, "/"), true
}
