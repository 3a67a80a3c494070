// Package schedule turns machine schedules into human text and does the
// calendar date math for the weekly job view.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/missionctl/missionctl/internal/models"
)

const (
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerDay    = 24 * msPerHour
)

// Humanize renders a schedule as a human-readable sentence. now anchors the
// relative wording for one-time schedules.
func Humanize(s models.Schedule, now time.Time) string {
	switch s.Kind {
	case models.ScheduleNone:
		return "Unknown schedule"
	case models.ScheduleEvery:
		return humanizeInterval(s.EveryMs)
	case models.ScheduleAt:
		if s.At.IsZero() {
			return "One-time job"
		}
		return "One-time: " + FormatDateTime(now, s.At)
	case models.ScheduleCron:
		out := HumanizeCron(s.Expr)
		if s.TZ != "" {
			out += " (" + s.TZ + ")"
		}
		return out
	default:
		return s.Raw
	}
}

// humanizeInterval picks the largest unit that fits and rounds to the
// nearest whole value.
func humanizeInterval(ms int64) string {
	switch {
	case ms >= msPerDay:
		return pluralize(roundDiv(ms, msPerDay), "day")
	case ms >= msPerHour:
		return pluralize(roundDiv(ms, msPerHour), "hour")
	default:
		return pluralize(roundDiv(ms, msPerMinute), "minute")
	}
}

func roundDiv(ms, unit int64) int64 {
	return int64(math.Round(float64(ms) / float64(unit)))
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("Every 1 %s", unit)
	}
	return fmt.Sprintf("Every %d %ss", n, unit)
}
