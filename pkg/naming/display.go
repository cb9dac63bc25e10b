package naming

import (
	"strings"
	"unicode"
)

// displayPunct is the punctuation the official DLC catalog allows in display
// names, plus the space.
const displayPunct = `- _/&',!.?()"#`

// DisplayName deletes every character that is not an ASCII alphanumeric, a
// Unicode letter, or part of the allowed display punctuation set. Case is
// never changed; diacritics survive, only illegal symbols are dropped.
func DisplayName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case unicode.IsLetter(r):
			return r
		case strings.ContainsRune(displayPunct, r):
			return r
		}
		return -1
	}, s)
}

// sortablePunct is the residue allowed in a sortable name after abbreviation
// expansion and diacritic folding have already run.
const sortablePunct = "_#'. "

// SortableFragment deletes everything except ASCII alphanumerics, the space
// and the characters in sortablePunct. It is the strictest of the display
// filters and runs near the end of the sortable-name pipeline to trim any
// residue left by the earlier stages.
func SortableFragment(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return r
		case strings.ContainsRune(sortablePunct, r):
			return r
		}
		return -1
	}, s)
}
