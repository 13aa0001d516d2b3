// Package decode provides total guards and extractors over untyped JSON
// values. The backend's response shapes are not contractually guaranteed
// field-by-field, so every function here must accept any input (nil,
// primitives, arrays where objects are expected) without panicking.
package decode

import (
	"math"
	"strconv"
	"strings"
)

// IsRecord reports whether v is a non-nil JSON object.
func IsRecord(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// AsRecord coerces v to a record, returning an empty record when v is not
// an object. The result is never nil.
func AsRecord(v any) map[string]any {
	if m, ok := v.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}

// Record returns the record stored under key, or false when v is not a
// record, the key is absent, or the value is not a record.
func Record(v any, key string) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	child, ok := m[key].(map[string]any)
	if !ok || child == nil {
		return nil, false
	}
	return child, true
}

// Array returns the array stored under key, or false when v is not a
// record, the key is absent, or the value is not an array.
func Array(v any, key string) ([]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	arr, ok := m[key].([]any)
	if !ok {
		return nil, false
	}
	return arr, true
}

// OptionalString coerces v to a string. Strings pass through; numbers and
// booleans are formatted; everything else (including nil) is rejected.
func OptionalString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// Number coerces v to a float64. Numeric strings parse; non-finite results
// are rejected.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int coerces v to an int via Number, truncating any fraction.
func Int(v any) (int, bool) {
	f, ok := Number(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Boolean coerces v to a bool. Accepts bools, the strings "true"/"1"
// (case-insensitive), and nonzero numbers.
func Boolean(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1"
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

// StringMap coerces v to a string-to-string map, converting scalar values
// with OptionalString and dropping anything else. Returns nil when v is
// not a record or yields no usable entries.
func StringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, raw := range m {
		if s, ok := OptionalString(raw); ok {
			out[k] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FirstString returns the first key in keys whose value under rec coerces
// to a non-empty string.
func FirstString(rec map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, present := rec[k]; present {
			if s, ok := OptionalString(v); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// FirstNumber returns the first key in keys whose value under rec coerces
// to a number.
func FirstNumber(rec map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, present := rec[k]; present {
			if f, ok := Number(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}
