// Package values converts loosely typed configuration values.
//
// TOML decoding yields int64, float64, []any and nested maps; environment
// overrides and CLI input yield strings. Config stores share these helpers
// so every store answers GetInt or GetStringSlice the same way.
package values

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// String converts val to a string. Only strings convert.
func String(val any) string {
	s, _ := val.(string)
	return s
}

// Int converts val to an int.
func Int(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float converts val to a float64.
func Float(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Bool converts val to a bool.
func Bool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		return false
	}
}

// StringSlice converts val to a []string. A string is split on commas.
func StringSlice(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return nil
	}
}

// Duration converts val to a time.Duration.
// Strings use time.ParseDuration; bare numbers are seconds.
func Duration(val any) time.Duration {
	switch v := val.(type) {
	case time.Duration:
		return v
	case int, int64, float64:
		return time.Duration(Float(v) * float64(time.Second))
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return time.Duration(f * float64(time.Second))
		}
		return 0
	default:
		return 0
	}
}

// StringMap collects every flat key below prefix into a map keyed by the
// remainder of the key. Non-string values are skipped.
func StringMap(data map[string]any, prefix string) map[string]string {
	p := prefix + "."
	var result map[string]string
	for key, val := range data {
		if !strings.HasPrefix(key, p) {
			continue
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		if result == nil {
			result = make(map[string]string)
		}
		result[strings.TrimPrefix(key, p)] = str
	}
	return result
}

// Flatten converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range Flatten(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Nest converts dot-notation keys back into nested maps for encoding.
func Nest(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := make(map[string]any)
	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = flat[key]
	}
	return root
}
