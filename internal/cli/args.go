package cli

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ParseArgs turns "key=value" pairs into an argument map. Values stay strings
// for the operation decoder to convert ("2.5", "NaN", "1,2", "1,2,3"), except
// those starting with '{' or '[' which are parsed as JSON.
func ParseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q: expected key=value", pair)
		}
		if _, dup := args[key]; dup {
			return nil, fmt.Errorf("argument %q given more than once", key)
		}

		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "{") || strings.HasPrefix(value, "[") {
			var v any
			if err := json.Unmarshal([]byte(value), &v); err != nil {
				return nil, fmt.Errorf("argument %q: %w", key, err)
			}
			args[key] = v
			continue
		}
		args[key] = value
	}
	return args, nil
}
