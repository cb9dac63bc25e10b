// Package naming builds canonical display names, sortable names, machine keys
// and file names from arbitrary user-supplied artist, title and album text,
// following the official DLC naming convention.
//
// Each output context has its own legality rules, so the package exposes a
// family of filters rather than one: DisplayName keeps Unicode letters and a
// small punctuation set, SortableFragment keeps only the sortable residue,
// Key keeps ASCII alphanumerics alone, and FileName/PathName delete whatever
// the target platform reserves.
//
// # Sortable names
//
// SortableName runs a fixed pipeline (abbreviation expansion, diacritic
// folding, character filtering, article move, capitalization, whitespace
// cleanup) whose order must never change; see the pipeline comment in
// sortable.go for why.
//
//	naming.SortableName("The Rolling Stones") // "Rolling Stones, The"
//
// # Keys
//
// Keys are length-capped ASCII identifiers for manifests and archives:
//
//	naming.SongKey("Song Title", "Song Title") // "SongTitleSong"
//	naming.Acronym("Guns N' Roses")            // "GNR"
//
// All functions are pure and stateless; empty input yields empty output and
// no function returns an error.
package naming
