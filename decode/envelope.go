package decode

// Envelope unwrapping. The backend wraps payloads in several historical
// shapes ({data}, {items}, {success, data}, bare arrays). The unwrappers
// try a fixed list of keys in priority order; the first match wins and
// later candidates are never consulted, even if the match has an
// unexpected inner shape. Callers tolerate a possibly-wrong unwrap rather
// than the unwrapper guessing across ambiguous precedence.

// UnwrapItem locates a single-item payload inside body. Each key is tried
// in order; the first whose value is a record wins. When no key matches
// and body itself is a record, body is returned as-is.
func UnwrapItem(body any, keys ...string) map[string]any {
	for _, k := range keys {
		if rec, ok := Record(body, k); ok {
			return rec
		}
	}
	return AsRecord(body)
}

// UnwrapList locates a list payload inside body. Each key is tried in
// order; the first whose value is an array wins. When no key matches and
// body itself is an array, body is returned. Otherwise the result is an
// empty, non-nil slice.
func UnwrapList(body any, keys ...string) []any {
	for _, k := range keys {
		if arr, ok := Array(body, k); ok {
			return arr
		}
	}
	if arr, ok := body.([]any); ok {
		return arr
	}
	return []any{}
}

// ListTotal extracts the total item count from a list envelope, reading
// meta.total before a top-level total. Falls back to the given item count.
func ListTotal(body any, itemCount int) int {
	if meta, ok := Record(body, "meta"); ok {
		if n, ok := Int(meta["total"]); ok {
			return n
		}
	}
	if rec, ok := body.(map[string]any); ok {
		if n, ok := Int(rec["total"]); ok {
			return n
		}
	}
	return itemCount
}
