package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// timestampLayouts covers the formats the backend has been observed to
// emit. RFC 3339 first, then the legacy space-separated form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a raw timestamp value. Accepts RFC 3339 strings,
// the backend's legacy formats, and Unix-seconds numbers.
func parseTimestamp(v any) (time.Time, bool) {
	if s, ok := v.(string); ok {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	}
	if f, ok := decode.Number(v); ok && f > 0 {
		return time.Unix(int64(f), 0).UTC(), true
	}
	return time.Time{}, false
}

// timeOrNow resolves a timestamp through the given alias keys, defaulting
// to the current time when every candidate is absent or unparseable. The
// "now" default is a normalization policy decision, not a backend
// guarantee: required timestamps must never be zero-valued.
func timeOrNow(rec map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		if v, present := rec[k]; present {
			if t, ok := parseTimestamp(v); ok {
				return t
			}
		}
	}
	return time.Now().UTC()
}

// optionalTime resolves a timestamp through the given alias keys, leaving
// absent values nil.
func optionalTime(rec map[string]any, keys ...string) *time.Time {
	for _, k := range keys {
		if v, present := rec[k]; present {
			if t, ok := parseTimestamp(v); ok {
				return &t
			}
		}
	}
	return nil
}
