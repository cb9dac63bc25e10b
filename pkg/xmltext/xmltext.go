// Package xmltext prepares file contents for embedding in XML manifests:
// it strips control characters XML 1.0 forbids and re-encodes to UTF-8
// without a byte-order mark. The pure Scrub transform is exposed separately
// from the file reader so the text functions stay free of I/O.
package xmltext

import (
	"fmt"
	"os"
	"regexp"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// illegalControls are the C0 control characters XML 1.0 forbids. Tab, LF and
// CR are legal and kept.
var illegalControls = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")

// Scrub deletes every XML-illegal control character from s.
func Scrub(s string) string {
	return illegalControls.ReplaceAllLiteralString(s, "")
}

// ScrubFile reads the file at path, drops XML-illegal control characters and
// returns the contents re-encoded as UTF-8 without a byte-order mark. A
// missing file is reported as ErrFileNotFound so callers can distinguish it
// from other read failures.
func ScrubFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	// Decodes UTF-8, or UTF-16 when a byte-order mark says so, and never
	// emits a BOM of its own. Transformers carry state, so build one per call.
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToDecode, err)
	}

	return []byte(Scrub(string(decoded))), nil
}
