package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// timestampLayouts are tried in order. The backend emits local date-times
// without a zone as well as RFC 3339 values, with or without a colon in the offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is a time.Time that accepts the date-time shapes sent by the
// backend. A value in an unknown shape keeps its text in Raw and leaves Time
// zero, so one odd field does not fail the whole document.
type Timestamp struct {
	time.Time
	Raw string
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses raw with the known layouts.
func ParseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// UnmarshalJSON implements json.Unmarshaler. Numbers are epoch milliseconds.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			ts.Time = time.UnixMilli(ms).UTC()

			return nil
		}
		ts.Raw = string(data)

		return nil
	}
	if raw == "" {
		return nil
	}

	if t, ok := ParseTimestamp(raw); ok {
		ts.Time = t

		return nil
	}
	ts.Raw = raw

	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		if ts.Raw != "" {
			return json.Marshal(ts.Raw)
		}

		return []byte("null"), nil
	}

	return json.Marshal(ts.Format(time.RFC3339))
}
