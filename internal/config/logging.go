package config

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/pagekit/internal/logging"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logResult tracks the open log file behind Logger, if any.
//
//nolint:gochecknoglobals // Tracks the global logger's file handle for proper cleanup
var logResult *logging.LogPathResult

// logMu protects concurrent access to logResult and Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger replaces the package-level Logger with one built from cfg, closing any
// log file the previous logger held. It reports whether file output fell back to stderr.
func InitLogger(cfg LoggingConfig) logging.LogPathResult {
	logMu.Lock()
	defer logMu.Unlock()

	closeLogFileLocked()

	result := logging.NewLoggerWithPath(cfg.ToLoggingConfig())
	Logger = result.Logger
	logResult = &result
	return result
}

// SetLogger replaces the package-level Logger without touching file handles.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	Logger = l
}

// SetLogLevel sets the global Logger's level. Unparseable levels select info.
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	Logger = Logger.Level(lvl)
}

// CloseLogFile closes the current log file handle, if any.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

// closeLogFileLocked must be called with logMu held.
func closeLogFileLocked() {
	if logResult != nil {
		_ = logResult.Close()
		logResult = nil
	}
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// init installs a console logger at info level so the package can log before any
// configuration is loaded.
//
//nolint:gochecknoinits // intentional: package-level logger must be initialized before use
func init() {
	InitLogger(LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat})
}

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// If File is set, Output becomes "file"; otherwise it is "stderr".
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global configuration's logging section.
// Overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
