//go:build !linux && !darwin

package dirent

//nolint:gochecknoglobals
var rawEntryTypes = map[uint8]EntryType{}
