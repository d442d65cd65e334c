package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keyPagination    = "pagination"
	keyOutput        = "output"
	keyLogging       = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySchemaVersion: true,
	keyPagination:    true,
	keyOutput:        true,
	keyLogging:       true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Fields named in an overlay section replace the target's
// values; sections and fields absent from the overlay are left unchanged. The
// merged result is validated, and on failure target is left as it was.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	// Discover which top-level keys are present in the overlay.
	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	merged := *target
	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so we can unmarshal it onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(&merged, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	if err = merged.Validate(); err != nil {
		return fmt.Errorf("overlay %s: %w", overlayPath, err)
	}
	*target = merged
	return nil
}

// unmarshalSection unmarshals raw YAML bytes onto a copy of the matching section
// of target and stores the result.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keySchemaVersion:
		var v string
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.SchemaVersion = v
		return nil
	case keyPagination:
		v := target.Pagination
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Pagination = v
		return nil
	case keyOutput:
		v := target.Output
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
		return nil
	case keyLogging:
		v := target.Logging
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
