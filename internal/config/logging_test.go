package config_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/logging"
)

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, logging.Config{Level: "debug", Format: "json", Output: logging.OutputStderr}, lc.ToLoggingConfig())

	lc.File = "/var/log/pagekit.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/pagekit.log", got.File)
}

func TestInitLoggerAndLevel(t *testing.T) {
	t.Cleanup(func() {
		config.CloseLogFile()
		config.InitLogger(config.LoggingConfig{Level: "info", Format: "console"})
	})

	path := filepath.Join(t.TempDir(), "pagekit.log")
	result := config.InitLogger(config.LoggingConfig{Level: "warn", Format: "json", File: path})
	assert.True(t, result.UsingFile)
	assert.Equal(t, zerolog.WarnLevel, config.GetLogger().GetLevel())

	config.SetLogLevel("debug")
	assert.Equal(t, zerolog.DebugLevel, config.GetLogger().GetLevel())

	config.SetLogLevel("nonsense")
	assert.Equal(t, zerolog.InfoLevel, config.GetLogger().GetLevel())
}
