package vendus

// UnwrapList normalizes the response shapes Vendus uses for listings: either
// a bare JSON array, or an object wrapping the array under "data" or "items".
// A lone object becomes a single-element list; anything else is empty.
func UnwrapList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		if l, ok := t["data"].([]any); ok {
			return l
		}
		if l, ok := t["items"].([]any); ok {
			return l
		}
		return []any{t}
	}
	return nil
}
