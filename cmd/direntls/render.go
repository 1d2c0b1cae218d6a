package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/direntry/dirent"
	"github.com/desertwitch/direntry/internal/configuration"
	"github.com/desertwitch/direntry/platform"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	typeStyle   = lipgloss.NewStyle().Width(9) //nolint:mnd
)

func styleName(e *dirent.Entry) string {
	name := e.NameString()

	switch e.Type {
	case dirent.Directory:
		return dirStyle.Render(name)
	case dirent.Symlink:
		return linkStyle.Render(name)
	default:
		return name
	}
}

func renderListing(w io.Writer, path string, entries []dirent.Entry, cfg *configuration.AppConfiguration) error {
	fmt.Fprintln(w, headerStyle.Render(path))

	truncated := 0
	for i := range entries {
		e := &entries[i]
		if e.Truncated {
			truncated++
		}
		fmt.Fprintf(w, "%s %12d  %s\n", typeStyle.Render(e.Type.String()), e.Inode, styleName(e))

		if cfg.Raw {
			rec, err := e.MarshalBinary()
			if err != nil {
				return fmt.Errorf("(direntls-render) %w", err)
			}
			fmt.Fprint(w, hex.Dump(rec))
		}
	}

	fmt.Fprintf(w, "%s entries, %s of records",
		humanize.Comma(int64(len(entries))),
		humanize.Bytes(uint64(len(entries)*dirent.RecordSize))) //nolint:gosec
	if truncated > 0 {
		fmt.Fprintf(w, ", %s truncated names", humanize.Comma(int64(truncated)))
	}
	fmt.Fprintln(w)

	if cfg.Digest {
		sum, err := dirent.Fingerprint(entries)
		if err != nil {
			return fmt.Errorf("(direntls-render) %w", err)
		}
		fmt.Fprintf(w, "blake3 %s\n", hex.EncodeToString(sum[:]))
	}

	return nil
}

func renderFacts(w io.Writer, f platform.Facts) {
	fmt.Fprintln(w, headerStyle.Render("platform"))
	fmt.Fprintf(w, "  windows        %t\n", f.IsWindows)
	fmt.Fprintf(w, "  mac            %t\n", f.IsMac)
	fmt.Fprintf(w, "  little-endian  %t\n", f.IsLittleEndian)
	fmt.Fprintf(w, "  language       %s\n", orUnavailable(f.UserLanguage, f.UserLanguage != ""))
	fmt.Fprintf(w, "  country        %s\n", orUnavailable(f.UserCountry, f.UserCountry != ""))
	fmt.Fprintf(w, "  os version     %s\n", orUnavailable(f.OSVersion.String(), f.HasOSVersion))
	fmt.Fprintf(w, "  temp directory %s\n", orUnavailable(f.TempDirectory, f.HasTempDirectory))
}

func orUnavailable(s string, ok bool) string {
	if !ok {
		return "(unavailable)"
	}

	return s
}
