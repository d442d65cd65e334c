package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagekit/internal/config"
)

// newDefaultTarget returns a Config with known non-default values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	cfg := config.Default()
	cfg.Pagination.Limit = 25
	cfg.Pagination.ButtonsMax = 7
	cfg.Output.DefaultFormat = "json"
	cfg.Logging.Level = "warn"
	return cfg
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "yaml", target.Output.DefaultFormat)
	assert.Equal(t, 25, target.Pagination.Limit)
	assert.Equal(t, 7, target.Pagination.ButtonsMax)
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_PartialSectionKeepsOtherFields(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
pagination:
  limit: 50
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 50, target.Pagination.Limit)
	assert.Equal(t, 7, target.Pagination.ButtonsMax)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "console", target.Logging.Format)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_InvalidResultLeavesTarget(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
pagination:
  limit: 0
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.ErrorIs(t, err, config.ErrInvalidLimit)
	assert.Equal(t, 25, target.Pagination.Limit)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "pagination: [unclosed\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})
}
