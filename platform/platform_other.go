//go:build !darwin && !windows

package platform

//nolint:gochecknoglobals
var current provider = unsupportedProvider{}

type unsupportedProvider struct{}

func (unsupportedProvider) userLanguage() string { return "" }

func (unsupportedProvider) userCountry() string { return "" }

func (unsupportedProvider) osVersion() (Version, bool) { return Version{}, false }

func (unsupportedProvider) tempDirectory() (string, bool) { return "", false }
