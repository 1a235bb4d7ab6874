package util

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// TruncateEllipsis shortens value to at most limit runes, marking the cut with an ellipsis.
func TruncateEllipsis(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// FormatKeyValues renders a map as space-separated "key=value" pairs, sorted by key,
// for single-line display.
func FormatKeyValues(values map[string]interface{}) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, values[k]))
	}
	return strings.Join(parts, " ")
}

// ParseKeyValues turns "key=value" pairs into a map. Values that parse as JSON keep
// their type (numbers, booleans, null, quoted strings); everything else stays a raw
// string. All malformed pairs are reported together.
func ParseKeyValues(pairs []string) (map[string]interface{}, error) {
	var errs *multierror.Error
	values := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			errs = multierror.Append(errs, fmt.Errorf("invalid key=value pair: %q", pair))
			continue
		}
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		values[key] = v
	}
	return values, errs.ErrorOrNil()
}
