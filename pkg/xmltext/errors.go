package xmltext

import "errors"

var (
	// ErrFileNotFound is returned when the source file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFailedToReadFile is returned for any other read failure.
	ErrFailedToReadFile = errors.New("failed to read file")

	// ErrFailedToDecode is returned when the file contents cannot be
	// re-encoded as UTF-8.
	ErrFailedToDecode = errors.New("failed to decode file contents")
)
