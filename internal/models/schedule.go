package models

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ScheduleKind discriminates the schedule union.
type ScheduleKind string

const (
	// ScheduleNone marks an absent or empty schedule.
	ScheduleNone ScheduleKind = ""
	// ScheduleCron is a 5-field cron expression, optionally with a timezone.
	ScheduleCron ScheduleKind = "cron"
	// ScheduleEvery is a fixed repeat interval.
	ScheduleEvery ScheduleKind = "every"
	// ScheduleAt is a one-time run at an absolute instant.
	ScheduleAt ScheduleKind = "at"
	// ScheduleRaw carries text we could not interpret; it is shown verbatim.
	ScheduleRaw ScheduleKind = "raw"
)

// Schedule is a tagged union over the two wire forms the generator produces:
// a structured object ({"kind":"cron","expr":...,"tz":...} and friends) and a
// legacy encoded string ("cron 0 9 * * * @ UTC", "every 30m", "at 2025-...").
// Legacy strings are normalized into the same kinds at decode time; anything
// unrecognized is kept as ScheduleRaw with the original text.
type Schedule struct {
	Kind ScheduleKind

	// Expr and TZ are set for ScheduleCron. Legacy "cron ... @ tz" strings
	// drop the timezone annotation, so TZ stays empty for those.
	Expr string
	TZ   string

	// EveryMs is set for ScheduleEvery.
	EveryMs int64

	// At is set for ScheduleAt when an absolute instant is known.
	At time.Time

	// Raw holds the verbatim text for ScheduleRaw.
	Raw string
}

// IsRecurring reports whether the schedule repeats (cron or interval).
func (s Schedule) IsRecurring() bool {
	return s.Kind == ScheduleCron || s.Kind == ScheduleEvery
}

// scheduleObject is the structured wire form.
type scheduleObject struct {
	Kind    string          `json:"kind"`
	Expr    string          `json:"expr"`
	TZ      string          `json:"tz"`
	EveryMs int64           `json:"everyMs"`
	At      json.RawMessage `json:"at"`
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || trimmed == `""` {
		*s = Schedule{}
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = parseLegacySchedule(str)
		return nil
	}

	var obj scheduleObject
	if err := json.Unmarshal(data, &obj); err != nil {
		*s = Schedule{Kind: ScheduleRaw, Raw: compactJSON(data)}
		return nil
	}

	switch ScheduleKind(obj.Kind) {
	case ScheduleCron:
		*s = Schedule{Kind: ScheduleCron, Expr: obj.Expr, TZ: obj.TZ}
	case ScheduleEvery:
		*s = Schedule{Kind: ScheduleEvery, EveryMs: obj.EveryMs}
	case ScheduleAt:
		*s = Schedule{Kind: ScheduleAt, At: parseAtField(obj.At)}
	default:
		*s = Schedule{Kind: ScheduleRaw, Raw: compactJSON(data)}
	}
	return nil
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScheduleNone:
		return []byte("null"), nil
	case ScheduleCron:
		return json.Marshal(scheduleObject{Kind: string(s.Kind), Expr: s.Expr, TZ: s.TZ})
	case ScheduleEvery:
		return json.Marshal(map[string]any{"kind": "every", "everyMs": s.EveryMs})
	case ScheduleAt:
		out := map[string]any{"kind": "at"}
		if !s.At.IsZero() {
			out["at"] = s.At.Format(time.RFC3339)
		}
		return json.Marshal(out)
	default:
		return json.Marshal(s.Raw)
	}
}

var legacyEveryRe = regexp.MustCompile(`^(\d+)([mhd])$`)

// parseLegacySchedule normalizes the legacy string encoding. Unparsable
// variants keep the original string so it can be shown unchanged.
func parseLegacySchedule(str string) Schedule {
	trimmed := strings.TrimSpace(str)
	if trimmed == "" {
		return Schedule{}
	}

	switch {
	case strings.HasPrefix(trimmed, "every "):
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "every "))
		m := legacyEveryRe.FindStringSubmatch(rest)
		if m == nil {
			return Schedule{Kind: ScheduleRaw, Raw: str}
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Schedule{Kind: ScheduleRaw, Raw: str}
		}
		var unit int64
		switch m[2] {
		case "m":
			unit = int64(time.Minute / time.Millisecond)
		case "h":
			unit = int64(time.Hour / time.Millisecond)
		case "d":
			unit = int64(24 * time.Hour / time.Millisecond)
		}
		return Schedule{Kind: ScheduleEvery, EveryMs: n * unit}

	case strings.HasPrefix(trimmed, "at "):
		rest := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(trimmed, "at ")), "Z")
		t, err := time.ParseInLocation("2006-01-02T15:04:05", rest, time.UTC)
		if err != nil {
			t2, err2 := ParseInstant(rest)
			if err2 != nil {
				return Schedule{Kind: ScheduleRaw, Raw: str}
			}
			t = t2
		}
		return Schedule{Kind: ScheduleAt, At: t}

	case strings.HasPrefix(trimmed, "cron "):
		expr := strings.TrimSpace(strings.TrimPrefix(trimmed, "cron "))
		// A " @ tz" suffix is an annotation, not part of the expression.
		if i := strings.Index(expr, " @ "); i >= 0 {
			expr = expr[:i]
		}
		return Schedule{Kind: ScheduleCron, Expr: expr}

	default:
		return Schedule{Kind: ScheduleRaw, Raw: str}
	}
}

// parseAtField accepts either epoch milliseconds or a timestamp string.
func parseAtField(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil && ms > 0 {
		return time.UnixMilli(ms)
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil && str != "" {
		if t, err := ParseInstant(str); err == nil {
			return t
		}
	}
	return time.Time{}
}

func compactJSON(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(data)
	}
	return string(out)
}
