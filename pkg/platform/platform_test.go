package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/songkit/pkg/platform"
)

func TestPredefinedTargets(t *testing.T) {
	assert.Contains(t, platform.Windows.InvalidFileNameChars, `\`)
	assert.Contains(t, platform.Windows.InvalidFileNameChars, "/")
	assert.NotContains(t, platform.Windows.InvalidPathChars, "/")

	assert.Equal(t, "/", platform.POSIX.InvalidFileNameChars)
	assert.Empty(t, platform.POSIX.InvalidPathChars)

	assert.Contains(t, platform.Console.InvalidFileNameChars, " ")

	assert.Equal(t, platform.Windows, platform.Default)
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults without overrides", func(t *testing.T) {
		p, err := platform.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, platform.Default, p)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SONGKIT_INVALID_FILENAME_CHARS", "abc")
		t.Setenv("SONGKIT_INVALID_PATH_CHARS", "xyz")

		p, err := platform.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "abc", p.InvalidFileNameChars)
		assert.Equal(t, "xyz", p.InvalidPathChars)
	})
}
