package naming

import "github.com/dmitrymomot/songkit/pkg/normalize"

// sortablePipeline is the fixed transform order for sortable names. The order
// is load-bearing: abbreviation expansion must see original punctuation
// (&, .) before the character filter strips it; the article move needs the
// punctuation already cleaned so the appended comma form is correct; and
// capitalization runs after the move so the moved article keeps its original
// case.
var sortablePipeline = normalize.Compose(
	normalize.ExpandAbbreviations,
	normalize.FoldDiacritics,
	SortableFragment,
	MoveLeadingArticle,
	normalize.CapitalizeFirst,
	normalize.CollapseSpaces,
)

// SortableName converts a display name into its alphabetically sortable form:
// symbols spelled out, diacritics folded, a leading article moved to the end
// and the first character capitalized.
//
//	SortableName("The Beatles") // "Beatles, The"
//	SortableName("blink-182")   // "Blink 182"
func SortableName(s string) string {
	return sortablePipeline(s)
}
