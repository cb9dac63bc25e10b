package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/songkit/pkg/naming"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "drops spaces and punctuation",
			input:    "Song Title (Live)!",
			expected: "SongTitleLive",
		},
		{
			name:     "drops non-ascii letters",
			input:    "Björk",
			expected: "Bjrk",
		},
		{
			name:     "keeps digits and case",
			input:    "blink-182",
			expected: "blink182",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := naming.Key(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSongKey(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		reference string
		expected  string
	}{
		{
			name:      "collision with reference appends suffix",
			input:     "Song Title",
			reference: "Song Title",
			expected:  "SongTitleSong",
		},
		{
			name:      "no collision",
			input:     "Hey Jude",
			reference: "Let It Be",
			expected:  "HeyJude",
		},
		{
			name:      "empty input and reference",
			input:     "",
			reference: "",
			expected:  "Song",
		},
		{
			name:      "empty input with reference",
			input:     "",
			reference: "Let It Be",
			expected:  "",
		},
		{
			name:      "truncated to thirty characters",
			input:     "An Extremely Long Song Title That Never Seems To End",
			reference: "",
			expected:  "AnExtremelyLongSongTitleThatNe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := naming.SongKey(tt.input, tt.reference)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSongKeyProperties(t *testing.T) {
	inputs := []struct{ s, ref string }{
		{"The Quick Brown Fox Jumps Over The Lazy Dog", ""},
		{"Song Title", "Song Title"},
		{"Björk & Guðmundsdóttir!!!", "x"},
		{"", ""},
	}

	for _, in := range inputs {
		k := naming.SongKey(in.s, in.ref)
		assert.LessOrEqual(t, len(k), 30)
		for _, r := range k {
			ok := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
			assert.True(t, ok, "key %q contains non-alphanumeric %q", k, r)
		}
	}
}

func TestAcronym(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "multi token initials upper-cased",
			input:    "Guns N' Roses",
			expected: "GNR",
		},
		{
			name:     "single token keeps case",
			input:    "Tool",
			expected: "Tool",
		},
		{
			name:     "single lowercase token stays lowercase",
			input:    "tool",
			expected: "tool",
		},
		{
			name:     "single token folds diacritics",
			input:    "Motörhead",
			expected: "Motorhead",
		},
		{
			name:     "hyphenated splits into tokens",
			input:    "blink-182",
			expected: "B1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := naming.Acronym(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
