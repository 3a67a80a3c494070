package models

import (
	"strings"
	"time"
)

// Timestamp is a time.Time that tolerates the generator's timestamp formats:
// RFC3339 with or without fractional seconds, and bare ISO local times with
// no zone offset (Python isoformat output). Empty strings and "-" decode to
// the zero time.
type Timestamp struct {
	time.Time
}

var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseInstant parses a timestamp string in any of the accepted layouts.
// Layouts without a zone offset are interpreted in local time.
func ParseInstant(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "-" || s == "null" {
		ts.Time = time.Time{}
		return nil
	}
	t, err := ParseInstant(s)
	if err != nil {
		// Bad timestamps degrade to zero rather than failing the whole document.
		ts.Time = time.Time{}
		return nil
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + ts.Format(time.RFC3339) + `"`), nil
}
