package paginator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Recognized configuration keys.
const (
	keyStart = "start"
	keyLimit = "limit"
	keyTotal = "total"
)

// ErrInvalidValue is returned by ConfigureValues for values that cannot be used.
var ErrInvalidValue = errors.New("invalid pagination value")

// Options is a partial configuration. Nil fields leave the current value unchanged.
type Options struct {
	Start *int
	Limit *int
	Total *int
}

// Int returns a pointer to v, for building Options literals.
func Int(v int) *int {
	return &v
}

// ConfigureValues applies a partial configuration from loosely-typed values such as
// query parameters or decoded JSON/YAML. Recognized keys are "start", "limit" and
// "total"; other keys are ignored, as are nil values.
//
// Values are coerced to int ("40", 40.0 and json.Number all work). A value that
// cannot be coerced, or that fails validation, leaves its field unchanged and is
// reported in the returned error. Valid keys in the same call are still applied and
// derived state is always recomputed.
func (p *Paginator) ConfigureValues(values map[string]any) error {
	var (
		opts Options
		errs []error
	)

	for _, key := range []string{keyStart, keyLimit, keyTotal} {
		raw, ok := values[key]
		if !ok || raw == nil {
			continue
		}
		n, err := coerceInt(raw)
		if err != nil {
			p.reject(key, raw, "not an integer")
			errs = append(errs, fmt.Errorf("%s: %w: %v", key, ErrInvalidValue, raw))
			continue
		}
		switch key {
		case keyStart:
			opts.Start = &n
		case keyLimit:
			opts.Limit = &n
		case keyTotal:
			opts.Total = &n
		}
	}

	for _, key := range p.apply(opts) {
		errs = append(errs, fmt.Errorf("%s: %w: out of range", key, ErrInvalidValue))
	}
	p.recompute()

	return errors.Join(errs...)
}

// coerceInt converts raw to an int. Strings are parsed as base-10 integers; other
// values go through weakly-typed decoding, which truncates floats. Booleans are
// rejected rather than read as 0 or 1.
func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case bool:
		return 0, fmt.Errorf("boolean %v is not an integer", v)
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	}

	var n int
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &n,
	})
	if err != nil {
		return 0, err
	}
	if err = decoder.Decode(raw); err != nil {
		return 0, err
	}
	return n, nil
}
