package platform

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Platform carries the reserved-character sets of a packaging target. The
// naming filters take these as input instead of querying the host OS, which
// keeps the text transforms host-independent and testable.
type Platform struct {
	// InvalidFileNameChars are deleted from generated file names.
	InvalidFileNameChars string `env:"SONGKIT_INVALID_FILENAME_CHARS"`
	// InvalidPathChars are deleted from generated path fragments.
	InvalidPathChars string `env:"SONGKIT_INVALID_PATH_CHARS"`
}

// Predefined targets. Windows carries the strictest set and doubles as the
// safe default for archives that may be unpacked anywhere.
var (
	Windows = Platform{
		InvalidFileNameChars: `<>:"/\|?*`,
		InvalidPathChars:     `<>:"|?*`,
	}

	POSIX = Platform{
		InvalidFileNameChars: "/",
		InvalidPathChars:     "",
	}

	// Console targets reject the same characters as Windows plus the space,
	// since some console transfer tools cannot handle it.
	Console = Platform{
		InvalidFileNameChars: `<>:"/\|?* `,
		InvalidPathChars:     `<>:"|?* `,
	}
)

// Default is the platform used when callers do not care about a specific
// target.
var Default = Windows

var loadEnvOnce sync.Once

// FromEnv returns the default platform with any SONGKIT_INVALID_* environment
// overrides applied. A .env file is honored once per process if present.
func FromEnv() (Platform, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	p := Default
	if err := env.Parse(&p); err != nil {
		return Platform{}, errors.Join(ErrParsingEnv, err)
	}
	return p, nil
}
