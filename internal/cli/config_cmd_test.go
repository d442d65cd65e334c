package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagekit/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)
	configPath := filepath.Join(home, "config.yaml")

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, configPath)

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Pagination, loaded.Pagination)

	_, err = executeCmd(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	home := setupCLITest(t)

	out, err := executeCmd(t, "config", "set", "pagination.limit", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Set pagination.limit = 25")

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "limit: 25")

	config.ResetGlobalConfigForTest()
	out, err = executeCmd(t, "config", "get", "pagination.limit")
	require.NoError(t, err)
	assert.Equal(t, "25\n", out)
}

func TestConfigSet_DoesNotPersistEnvironment(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv(config.EnvButtonsMax, "9")

	_, err := executeCmd(t, "config", "set", "output.default_format", "yaml")
	require.NoError(t, err)

	loaded, err := config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", loaded.Output.DefaultFormat)
	assert.Equal(t, config.DefaultButtonsMax, loaded.Pagination.ButtonsMax)
}

func TestConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "zero limit", key: "pagination.limit", value: "0", wantErr: config.ErrInvalidLimit},
		{name: "bad output format", key: "output.default_format", value: "xml", wantErr: config.ErrInvalidOutputFormat},
		{name: "unknown key", key: "pagination.sort", value: "asc", wantErr: config.ErrUnknownKey},
		{name: "incompatible schema", key: "schema_version", value: "2.0.0", wantErr: config.ErrIncompatibleSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)

			_, err := executeCmd(t, "config", "set", tt.key, tt.value)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			_, statErr := os.Stat(filepath.Join(home, "config.yaml"))
			assert.True(t, os.IsNotExist(statErr), "nothing should be written on error")
		})
	}
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "config", "get", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvLimit, "40")

	out, err := executeCmd(t, "config", "list")

	require.NoError(t, err)
	for _, key := range config.Keys() {
		assert.Contains(t, out, key)
	}
	assert.Regexp(t, `pagination\.limit\s+40`, out)
	assert.Regexp(t, `output\.default_format\s+table`, out)
}

func TestConfigValidate(t *testing.T) {
	t.Run("no file uses defaults", func(t *testing.T) {
		setupCLITest(t)

		out, err := executeCmd(t, "config", "validate", "--verbose")

		require.NoError(t, err)
		assert.Contains(t, out, "using defaults")
		assert.Contains(t, out, "Configuration is valid")
		assert.Contains(t, out, "Page size: 10")
	})

	t.Run("valid file", func(t *testing.T) {
		home := setupCLITest(t)
		content := "schema_version: 1.2.0\npagination:\n  limit: 15\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))

		out, err := executeCmd(t, "config", "validate", "-v")

		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
		assert.Contains(t, out, "Page size: 15")
	})

	t.Run("invalid file", func(t *testing.T) {
		home := setupCLITest(t)
		content := "pagination:\n  limit: -1\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))

		_, err := executeCmd(t, "config", "validate")

		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidLimit)
	})
}
