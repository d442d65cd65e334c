package config

import (
	"fmt"
	"strconv"
)

// Dotted keys understood by Get and Set.
const (
	KeySchemaVersion = "schema_version"
	KeyLimit         = "pagination.limit"
	KeyButtonsMax    = "pagination.buttons_max"
	KeyOutputFormat  = "output.default_format"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyLogFile       = "logging.file"
)

// Keys returns every settable key in display order.
func Keys() []string {
	return []string{
		KeySchemaVersion,
		KeyLimit, KeyButtonsMax,
		KeyOutputFormat,
		KeyLogLevel, KeyLogFormat, KeyLogFile,
	}
}

// Get returns the string form of the value at key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeySchemaVersion:
		return c.SchemaVersion, nil
	case KeyLimit:
		return strconv.Itoa(c.Pagination.Limit), nil
	case KeyButtonsMax:
		return strconv.Itoa(c.Pagination.ButtonsMax), nil
	case KeyOutputFormat:
		return c.Output.DefaultFormat, nil
	case KeyLogLevel:
		return c.Logging.Level, nil
	case KeyLogFormat:
		return c.Logging.Format, nil
	case KeyLogFile:
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value into the setting at key and validates the result. On a
// validation error the previous value is restored.
func (c *Config) Set(key, value string) error {
	prev := *c

	if err := c.set(key, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		*c = prev
		return err
	}
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case KeySchemaVersion:
		c.SchemaVersion = value
	case KeyLimit, KeyButtonsMax:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		if key == KeyLimit {
			c.Pagination.Limit = n
		} else {
			c.Pagination.ButtonsMax = n
		}
	case KeyOutputFormat:
		c.Output.DefaultFormat = value
	case KeyLogLevel:
		c.Logging.Level = value
	case KeyLogFormat:
		c.Logging.Format = value
	case KeyLogFile:
		c.Logging.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
