package naming

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/songkit/pkg/normalize"
	"github.com/dmitrymomot/songkit/pkg/platform"
)

// FileName deletes every character the target platform reserves for file
// names. The reserved set comes from the platform value, never from the host
// this code happens to run on.
func FileName(s string, p platform.Platform) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(p.InvalidFileNameChars, r) {
			return -1
		}
		return r
	}, s)
}

// PathName deletes every character the target platform reserves inside path
// fragments. Separators stay legal here, unlike in FileName.
func PathName(s string, p platform.Platform) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(p.InvalidPathChars, r) {
			return -1
		}
		return r
	}, s)
}

// ShortFileName formats a compact "{artist}_{title}_{version}" archive name.
// With useAcronym the artist collapses to its initials, otherwise both artist
// and title go through the display-name filter. Remaining spaces become
// hyphens before the platform filter and whitespace cleanup run.
func ShortFileName(artist, title, version string, useAcronym bool, p platform.Platform) string {
	a := DisplayName(artist)
	if useAcronym {
		a = Acronym(artist)
	}
	t := DisplayName(title)

	name := fmt.Sprintf("%s_%s_%s", a, t, version)
	name = strings.ReplaceAll(name, " ", "-")
	name = FileName(name, p)
	return normalize.CollapseSpaces(name)
}
