// Package metadata normalizes song metadata fields that must hold specific
// formats: tempo, release year, version and store app id. Malformed input
// falls back to a documented default instead of an error, matching the rest
// of the text transforms.
package metadata

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Defaults substituted for out-of-range or unparseable input.
const (
	DefaultTempo   = "120"
	DefaultVersion = "1"
)

var (
	// yearRegex accepts 1900-1999 and 2000-2019. The upper bound is fixed;
	// years 2020 and later are rejected because shipped catalogs were built
	// against this exact range and re-sorting them is not worth a silent
	// behavior change. Callers that need later years must validate upstream.
	yearRegex = regexp.MustCompile(`^(19\d{2}|20[01]\d)$`)

	// versionRegex captures the leading run of digits and dots ("1.2 beta"
	// yields "1.2").
	versionRegex = regexp.MustCompile(`^[0-9.]+`)

	// appIDRegex matches store app ids: the digit 2 followed by exactly five
	// more digits.
	appIDRegex = regexp.MustCompile(`^2\d{5}$`)
)

// NormalizeTempo parses s as a locale-invariant decimal, rounds to the
// nearest integer and returns it as a string when it lies strictly between 0
// and 300. Anything else (parse failures, zero, negatives, 300 and above)
// yields DefaultTempo. Note the exclusive upper bound: "299.6" rounds to 300
// and therefore falls back to the default.
func NormalizeTempo(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		f = 0
	}
	n := int(math.Round(f))
	if n > 0 && n < 300 {
		return strconv.Itoa(n)
	}
	return DefaultTempo
}

// NormalizeYear returns s unchanged when it is a four-digit year in the
// accepted 1900-2019 range, and an empty string otherwise.
func NormalizeYear(s string) string {
	if yearRegex.MatchString(s) {
		return s
	}
	return ""
}

// NormalizeVersion extracts the leading run of digits and dots from s, after
// trimming surrounding whitespace. Input with no leading numeric run yields
// DefaultVersion.
func NormalizeVersion(s string) string {
	v := versionRegex.FindString(strings.TrimSpace(s))
	if v == "" {
		return DefaultVersion
	}
	return v
}

// IsAppID reports whether s is a six-digit store app id beginning with 2.
func IsAppID(s string) bool {
	return appIDRegex.MatchString(s)
}
