package vendus

import (
	"math"
	"strconv"
)

// Field helpers for the loosely-typed records Vendus returns. Every helper
// degrades to a zero value on a missing or unexpected field, never an error.

// AsMap returns v as an object, or nil.
func AsMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// Str returns the first non-empty string among the given keys.
func Str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Num returns the first numeric value among the given keys. Numeric strings
// count: Vendus serializes prices as strings on some endpoints.
func Num(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		switch t := m[k].(type) {
		case float64:
			return t, true
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// ExtractID digs an identifier out of a creation response, tolerating a
// top-level id or one nested under "data" or "order".
func ExtractID(v any) any {
	m := AsMap(v)
	if m == nil {
		return nil
	}
	if id, ok := m["id"]; ok && id != nil {
		return id
	}
	for _, wrap := range []string{"data", "order"} {
		if inner := AsMap(m[wrap]); inner != nil {
			if id, ok := inner["id"]; ok && id != nil {
				return id
			}
		}
	}
	return nil
}

// IDKey renders any identifier shape (JSON number, string) into a stable
// comparison key, so a catalog id 1 matches a requested productId "1".
func IDKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case nil:
		return ""
	default:
		return ""
	}
}
