package schedule

import (
	"fmt"
	"time"
)

// FormatDateTime renders an instant relative to now: "Today at 3:04 PM",
// "Tomorrow at 9:00 AM", or "Mon Jan 2 at 3:04 PM". Comparison is by local
// calendar date.
func FormatDateTime(now, t time.Time) string {
	clock := clock12(t.Local().Hour(), t.Local().Minute())
	switch {
	case sameDay(t, now):
		return "Today at " + clock
	case sameDay(t, now.AddDate(0, 0, 1)):
		return "Tomorrow at " + clock
	default:
		return t.Local().Format("Mon Jan 2") + " at " + clock
	}
}

// FormatRelative renders how long ago t was: "Just now" under a minute,
// then whole minutes, hours, and days, and an absolute "January 2" label
// beyond a week. Thresholds are half-open on the lower bound with floor
// division into the unit.
func FormatRelative(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("January 2")
	}
}

// sameDay reports whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
