package naming

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/songkit/pkg/normalize"
)

// maxKeyLen caps machine keys so they stay usable as identifiers in manifests
// and archive entries.
const maxKeyLen = 30

// tokenSplitRegex separates words on runs of anything that is not a letter or
// digit. "Guns N' Roses" splits into Guns, N, Roses.
var tokenSplitRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Key deletes every character that is not an ASCII alphanumeric. No spaces,
// no punctuation, no case change.
func Key(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			return r
		}
		return -1
	}, s)
}

// SongKey builds a machine key for a song from s. When the key collides with
// referenceTitle (compared with spaces removed), the literal suffix "Song" is
// appended so artist and title keys of eponymous tracks stay distinct. The
// result is truncated to 30 characters and is never an error: empty input
// yields an empty key, or "Song" when referenceTitle is also empty.
func SongKey(s, referenceTitle string) string {
	k := Key(s)
	if k == strings.ReplaceAll(referenceTitle, " ", "") {
		k += "Song"
	}
	if len(k) > maxKeyLen {
		k = k[:maxKeyLen]
	}
	return k
}

// Acronym reduces a multi-word name to its upper-cased initials:
// "Guns N' Roses" becomes "GNR". Names that split into a single token fall
// back to diacritic folding plus the alphanumeric filter, and that path keeps
// the original case ("Tool" stays "Tool", not "TOOL"). The case asymmetry
// between the two paths is part of the established key format and must not
// change, since generated keys are compared against previously shipped ones.
func Acronym(s string) string {
	var tokens []string
	for _, t := range tokenSplitRegex.Split(s, -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	if len(tokens) > 1 {
		var b strings.Builder
		for _, t := range tokens {
			for _, r := range t {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
		return b.String()
	}

	return Key(normalize.FoldDiacritics(s))
}
