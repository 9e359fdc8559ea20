// Package schema checks that decoded JSON objects carry every field a deck or
// spread needs. encoding/json leaves absent fields at their zero value, which
// would let a spread file load as an empty deck.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMissingField = errors.New("missing required field")

// Require returns ErrMissingField naming every key of keys that is absent
// from the JSON object in data or set to null.
func Require(data []byte, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("%w: expected an object, got null", ErrMissingField)
	}

	var missing []string
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
