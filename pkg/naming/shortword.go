package naming

import "strings"

// article pairs a leading word with its trailing sort form. The two slices of
// the original implementation are kept as one table; order is the tie-break
// priority, earlier entries win.
type article struct {
	lead  string
	trail string
}

var articles = []article{
	{"The ", ", The"},
	{"A ", ", A"},
	{"An ", ", An"},
}

// canonicalArticle is what RestoreLeadingArticle always re-prepends, no
// matter which trail form matched. Its length also fixes how many characters
// the restore strips from the end.
const canonicalArticle = "The "

// MoveLeadingArticle rewrites a leading article into its trailing sort form:
// "The Beatles" becomes "Beatles, The". The first matching table entry wins
// and the match is exact, including the trailing space. Strings without a
// leading article are returned unchanged.
func MoveLeadingArticle(s string) string {
	for _, a := range articles {
		if strings.HasPrefix(s, a.lead) {
			rest := strings.TrimRight(strings.TrimPrefix(s, a.lead), " ")
			return rest + a.trail
		}
	}
	return s
}

// RestoreLeadingArticle undoes MoveLeadingArticle: "Beatles, The" becomes
// "The Beatles". Whichever trail form matched, the restored prefix is always
// "The " — restoring ", A" or ", An" therefore does not round-trip, which
// matches the catalog convention this emulates. The suffix cut is a fixed
// five characters (the length of ", The"), clamped so short inputs cannot
// index below zero.
func RestoreLeadingArticle(s string) string {
	for _, a := range articles {
		if strings.HasSuffix(s, a.trail) {
			cut := len(s) - len(", The")
			if cut < 0 {
				cut = 0
			}
			return canonicalArticle + strings.TrimRight(s[:cut], " ")
		}
	}
	return s
}
