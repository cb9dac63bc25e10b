package normalize

import "strings"

// replacement is a single literal substring substitution.
type replacement struct {
	old string
	new string
}

// abbreviations is applied strictly in order, each rule over the output of the
// previous one. Space-delimited variants come before their bare forms so that
// an already-isolated token keeps its single spacing, and longer patterns come
// before any rule that would alter their substrings ("Mrs." before "Mr.").
// Hyphen-to-space lives here rather than in the character filters because the
// sortable pipeline needs "blink-182" to become "blink 182" before stripping.
var abbreviations = []replacement{
	{" & ", " and "},
	{"&", " and "},
	{" + ", " plus "},
	{"+", " plus "},
	{" @ ", " at "},
	{"@", " at "},
	{"Mrs.", "Missus"},
	{"Mr.", "Mister"},
	{"Ms.", "Miss"},
	{"Jr.", "Junior"},
	{"Sr.", "Senior"},
	{"Dr.", "Doctor"},
	{"St.", "Saint"},
	{"-", " "},
	{"/", " "},
}

// ExpandAbbreviations rewrites symbols and common title abbreviations to their
// spelled-out sortable forms. Rules are literal substring replacements, not
// patterns, and the order of the table is load-bearing; see the table comment.
func ExpandAbbreviations(s string) string {
	for _, r := range abbreviations {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}
