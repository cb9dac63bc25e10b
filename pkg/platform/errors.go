package platform

import "errors"

var (
	// ErrParsingEnv is returned when environment overrides cannot be parsed
	// into a Platform value.
	ErrParsingEnv = errors.New("failed to parse platform environment overrides")
)
