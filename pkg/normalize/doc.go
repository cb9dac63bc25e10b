// Package normalize provides the low-level text transforms used to build
// canonical artist, title and album names: diacritic folding, abbreviation
// expansion and whitespace cleanup.
//
// All functions are pure string transforms with no shared state, so they are
// safe for concurrent use without coordination. None of them returns an
// error; empty input always yields empty output.
//
// # Diacritic folding
//
// Three variants exist with different fidelity/cost trade-offs:
//
//   - FoldDiacritics – table-driven, maps each accented code point to its
//     closest ASCII form, including digraph expansions (œ → "oe"). Idempotent.
//   - StripToLetters – strict, deletes everything outside [A-Za-z ] after
//     Unicode decomposition.
//   - FoldLatin1 – fast but lossy, transcodes through ISO 8859-1; output may
//     differ from FoldDiacritics for code points outside that repertoire.
//
// # Usage
//
//	import "github.com/dmitrymomot/songkit/pkg/normalize"
//
//	name := normalize.FoldDiacritics("Motörhead") // "Motorhead"
//
// Transforms compose into pipelines with Apply and Compose:
//
//	clean := normalize.Compose(
//	    normalize.ExpandAbbreviations,
//	    normalize.FoldDiacritics,
//	    normalize.CollapseSpaces,
//	)
package normalize
