package config

import (
	"math"
	"time"
)

// Config wraps a decoded document for type-safe value extraction.
// Accessors return their default when the key is missing or the value
// cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal. Floats are accepted
// only when they have no fractional part.
func (c Config) Int(key string, defaultVal int) int {
	if n, ok := toInt(c.data[key]); ok {
		return n
	}
	return defaultVal
}

// Float returns the numeric value for key as float64, or defaultVal.
func (c Config) Float(key string, defaultVal float64) float64 {
	if f, ok := toFloat(c.data[key]); ok {
		return f
	}
	return defaultVal
}

// Duration returns the duration value for key, or defaultVal.
//
// Strings are parsed with time.ParseDuration; bare numbers are seconds.
func (c Config) Duration(key string, defaultVal time.Duration) time.Duration {
	switch v := c.data[key].(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case time.Duration:
		return v
	default:
		if secs, ok := toFloat(v); ok {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return defaultVal
}

// StringSlice returns the list of strings for key, or defaultVal if the value
// is not a list or any element is not a string.
func (c Config) StringSlice(key string, defaultVal []string) []string {
	switch v := c.data[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			out = append(out, s)
		}
		return out
	}
	return defaultVal
}

// List returns the raw list for key, or nil.
func (c Config) List(key string) []any {
	if l, ok := c.data[key].([]any); ok {
		return l
	}
	return nil
}

// Sub returns the nested mapping at key as a Config. A missing or
// non-mapping value yields an empty Config.
func (c Config) Sub(key string) Config {
	switch v := c.data[key].(type) {
	case map[string]any:
		return New(v)
	case Config:
		return v
	}
	return New(nil)
}

// IntPair returns a two-element integer list such as [row, col].
func (c Config) IntPair(key string) ([2]int, bool) {
	return ToIntPair(c.data[key])
}

// IntPairs returns a list of two-element integer lists, such as wall cells.
// It reports false if any element is malformed.
func (c Config) IntPairs(key string) ([][2]int, bool) {
	raw, ok := c.data[key]
	if !ok {
		return nil, true
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([][2]int, 0, len(list))
	for _, item := range list {
		p, ok := ToIntPair(item)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}

// ToIntPair converts a decoded [a, b] list into a pair of ints.
func ToIntPair(v any) ([2]int, bool) {
	list, ok := v.([]any)
	if !ok || len(list) != 2 {
		return [2]int{}, false
	}
	a, okA := toInt(list[0])
	b, okB := toInt(list[1])
	if !okA || !okB {
		return [2]int{}, false
	}
	return [2]int{a, b}, true
}

// ToFloat converts a decoded number into a float64.
func ToFloat(v any) (float64, bool) {
	return toFloat(v)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n <= math.MaxInt {
			return int(n), true
		}
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
