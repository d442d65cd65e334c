// Package config loads, validates and persists the pagekit configuration file.
//
// Settings are resolved in this order, later sources winning:
//  1. Built-in defaults (New)
//  2. ~/.pagekit/config.yaml, or $PAGEKIT_HOME/config.yaml
//  3. An overlay file passed with --config (ShallowMergeYAML)
//  4. PAGEKIT_* environment variables
//  5. Command-line flags, applied by the cli package
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Defaults and accepted values.
const (
	SchemaVersion        = "1.0.0"
	schemaConstraint     = "^1"
	DefaultLimit         = 10
	DefaultButtonsMax    = 5
	DefaultOutputFormat  = "table"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	configFileName       = "config.yaml"
	configDirPermissions = 0o700
	configFilePermission = 0o600
)

// OutputFormats lists the formats accepted for output.default_format.
//
//nolint:gochecknoglobals // Read-only lookup table.
var OutputFormats = []string{"table", "json", "yaml"}

// Validation errors.
var (
	ErrInvalidLimit         = errors.New("pagination.limit must be positive")
	ErrInvalidButtonsMax    = errors.New("pagination.buttons_max must be positive")
	ErrInvalidOutputFormat  = errors.New("output.default_format must be one of table, json, yaml")
	ErrInvalidLogFormat     = errors.New("logging.format must be console or json")
	ErrIncompatibleSchema   = errors.New("incompatible config schema_version")
	ErrUnknownKey           = errors.New("unknown config key")
	ErrInvalidSchemaVersion = errors.New("invalid config schema_version")
)

// Config is the full pagekit configuration.
type Config struct {
	SchemaVersion string           `yaml:"schema_version"`
	Pagination    PaginationConfig `yaml:"pagination"`
	Output        OutputConfig     `yaml:"output"`
	Logging       LoggingConfig    `yaml:"logging"`

	path string
}

// PaginationConfig holds defaults for new paginators.
type PaginationConfig struct {
	Limit      int `yaml:"limit"`
	ButtonsMax int `yaml:"buttons_max"`
}

// OutputConfig controls command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Pagination: PaginationConfig{
			Limit:      DefaultLimit,
			ButtonsMax: DefaultButtonsMax,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the defaults overlaid with the user's config file (when present and
// valid) and environment overrides. Problems with the file are logged, not returned,
// so a broken file never prevents the CLI from starting.
func New() *Config {
	cfg := Default()

	path, err := GetConfigPath()
	if err == nil {
		cfg.path = path
		if loaded, loadErr := Load(path); loadErr == nil {
			cfg = loaded
		} else if !errors.Is(loadErr, os.ErrNotExist) {
			logger := GetLogger()
			logger.Warn().Err(loadErr).Str("path", path).Msg("ignoring config file")
		}
	}

	cfg.ApplyEnvOverrides()
	return cfg
}

// Load reads and validates the config file at path. Sections missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Save writes the configuration to path, or to the path it was loaded from when
// path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = c.path
	}
	if path == "" {
		return errors.New("no config path to save to")
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPermissions); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, configFilePermission); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	c.path = path
	return nil
}

// Path returns the file this configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Validate checks value ranges and schema compatibility.
func (c *Config) Validate() error {
	if err := checkSchemaVersion(c.SchemaVersion); err != nil {
		return err
	}
	if c.Pagination.Limit <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, c.Pagination.Limit)
	}
	if c.Pagination.ButtonsMax <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidButtonsMax, c.Pagination.ButtonsMax)
	}
	if !slices.Contains(OutputFormats, c.Output.DefaultFormat) {
		return fmt.Errorf("%w, got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w, got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// checkSchemaVersion accepts an empty version (treated as current) or any version
// within the supported major.
func checkSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchemaVersion, v, err)
	}
	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrIncompatibleSchema, v, schemaConstraint)
	}
	return nil
}

// Environment variables that override file settings.
const (
	EnvHome       = "PAGEKIT_HOME"
	EnvLimit      = "PAGEKIT_LIMIT"
	EnvButtonsMax = "PAGEKIT_BUTTONS_MAX"
	EnvOutput     = "PAGEKIT_OUTPUT"
	EnvLogLevel   = "PAGEKIT_LOG_LEVEL"
	EnvLogFormat  = "PAGEKIT_LOG_FORMAT"
)

// ApplyEnvOverrides applies PAGEKIT_* environment variables. Invalid numeric
// values are ignored with a warning.
func (c *Config) ApplyEnvOverrides() {
	if v, ok := envPositiveInt(EnvLimit); ok {
		c.Pagination.Limit = v
	}
	if v, ok := envPositiveInt(EnvButtonsMax); ok {
		c.Pagination.ButtonsMax = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

func envPositiveInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		logger := GetLogger()
		logger.Warn().Str("env", name).Str("value", raw).Msg("ignoring invalid environment override")
		return 0, false
	}
	return v, true
}
