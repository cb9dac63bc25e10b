package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseSpaces reduces every run of two or more spaces to a single space and
// trims leading and trailing whitespace.
func CollapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

// CapitalizeFirst upper-cases the first rune of s and leaves the rest of the
// string untouched. Empty input yields an empty string.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
