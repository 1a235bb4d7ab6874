package run

import (
	"github.com/mitchellh/mapstructure"
)

// FallbackKey holds the raw params value when binding to names fails.
const FallbackKey = "_args"

// BindParams maps a params value to parameter names. Structs and maps decode
// field-by-field; struct fields control their logged name with a `mapstructure:"name"`
// tag (untagged fields keep the Go field name). A nil value binds to an empty map so a
// no-parameter run still logs "params": {}.
func BindParams(v interface{}) (map[string]interface{}, error) {
	params := make(map[string]interface{})
	if v == nil {
		return params, nil
	}
	if err := mapstructure.Decode(v, &params); err != nil {
		return nil, err
	}
	return params, nil
}

// FallbackParams wraps a value that could not be bound to names (scalars, slices).
// Less informative than named parameters, but better than losing the run.
func FallbackParams(v interface{}) map[string]interface{} {
	return map[string]interface{}{FallbackKey: v}
}
