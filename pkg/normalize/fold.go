package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFold maps accented and decorated Latin code points to their closest
// ASCII equivalent. A few code points expand to digraphs (œ → "oe", ß → "ss")
// to match the official DLC naming convention. Runes not present in the table
// pass through FoldDiacritics unchanged.
var diacriticFold = map[rune]string{
	// a
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'ā': "a", 'ă': "a", 'ą': "a",
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Ā': "A", 'Ă': "A", 'Ą': "A",
	// c
	'ç': "c", 'ć': "c", 'č': "c", 'ĉ': "c", 'ċ': "c",
	'Ç': "C", 'Ć': "C", 'Č': "C", 'Ĉ': "C", 'Ċ': "C",
	// d
	'ď': "d", 'đ': "d", 'ð': "d",
	'Ď': "D", 'Đ': "D", 'Ð': "D",
	// e
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ē': "e", 'ė': "e", 'ę': "e", 'ě': "e",
	'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E", 'Ē': "E", 'Ė': "E", 'Ę': "E", 'Ě': "E",
	// g
	'ğ': "g", 'ģ': "g",
	'Ğ': "G", 'Ģ': "G",
	// i
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ī': "i", 'į': "i", 'ı': "i",
	'Ì': "I", 'Í': "I", 'Î': "I", 'Ï': "I", 'Ī': "I", 'Į': "I", 'İ': "I",
	// l
	'ł': "l", 'ļ': "l", 'ľ': "l",
	'Ł': "L", 'Ļ': "L", 'Ľ': "L",
	// n
	'ñ': "n", 'ń': "n", 'ň': "n", 'ņ': "n",
	'Ñ': "N", 'Ń': "N", 'Ň': "N", 'Ņ': "N",
	// o
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o", 'ō': "o", 'ő': "o",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O", 'Ø': "O", 'Ō': "O", 'Ő': "O",
	// r
	'ř': "r", 'ŕ': "r",
	'Ř': "R", 'Ŕ': "R",
	// s
	'ś': "s", 'š': "s", 'ş': "s", 'ș': "s",
	'Ś': "S", 'Š': "S", 'Ş': "S", 'Ș': "S",
	// t
	'ť': "t", 'ţ': "t", 'ț': "t",
	'Ť': "T", 'Ţ': "T", 'Ț': "T",
	// u
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ū': "u", 'ů': "u", 'ű': "u", 'ų': "u",
	'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U", 'Ū': "U", 'Ů': "U", 'Ű': "U", 'Ų': "U",
	// y
	'ý': "y", 'ÿ': "y",
	'Ý': "Y", 'Ÿ': "Y",
	// z
	'ź': "z", 'ž': "z", 'ż': "z",
	'Ź': "Z", 'Ž': "Z", 'Ż': "Z",
	// digraphs and specials
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ß': "ss",
	'þ': "th", 'Þ': "Th",
}

// FoldDiacritics replaces every code point found in the fold table with its
// ASCII mapping; everything else passes through unchanged. The output contains
// no table keys, so folding already-folded text is a no-op.
func FoldDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := diacriticFold[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// notBasicLatin matches everything outside [A-Za-z ].
var notBasicLatin = runes.Predicate(func(r rune) bool {
	return !(r == ' ' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'))
})

// StripToLetters normalizes to decomposed form and deletes every code point
// outside [A-Za-z ]. Decomposing first turns accents into separate combining
// marks, which then fall outside the allowed set and are deleted with the
// rest. Digits and all punctuation are removed too, which makes this stricter
// than FoldDiacritics. The chain is built per call; x/text transformers carry
// state and must not be shared between goroutines.
func StripToLetters(s string) string {
	out, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(notBasicLatin),
	), s)
	if err != nil {
		return s
	}
	return out
}

// FoldLatin1 approximates FoldDiacritics by transcoding through a single-byte
// Latin encoding: decompose, drop combining marks, then encode and decode
// ISO 8859-1 so only that repertoire survives. Runes the encoder cannot
// represent come back as the substitute rune and are removed at the end of
// the chain.
//
// This is cheaper than the table fold but lossy: code points without a
// canonical decomposition that also fall outside Latin-1 (œ, CJK, emoji) are
// dropped entirely rather than mapped to an ASCII digraph, so the two
// variants diverge for such input. Use FoldDiacritics when fidelity matters
// more than speed.
func FoldLatin1(s string) string {
	out, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()),
		charmap.ISO8859_1.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == encoding.ASCIISub })),
	), s)
	if err != nil {
		return s
	}
	return out
}
