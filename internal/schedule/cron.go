package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// HumanizeCron renders a 5-field cron expression (minute hour day-of-month
// month day-of-week) as a sentence. Patterns are tried in order and the
// first match wins; expressions that fit no pattern come back prefixed with
// "Cron: ", and strings with fewer than 5 fields are returned untouched.
func HumanizeCron(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) < 5 {
		return expr
	}
	min, hour, dom, mon, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	// */N minutes around the clock.
	if n, ok := stepMinute(min); ok && hour == "*" && dom == "*" && mon == "*" && dow == "*" {
		return fmt.Sprintf("Every %d minutes", n)
	}

	// */N minutes within an hour range.
	if n, ok := stepMinute(min); ok {
		if from, to, ok := hourRange(hour); ok {
			return fmt.Sprintf("Every %d min from %s to %s", n, hour12(from), hour12(to))
		}
	}

	m, minuteFixed := atoi(min)
	if !minuteFixed {
		return "Cron: " + expr
	}

	// Fixed minute, every hour.
	if hour == "*" && dom == "*" && mon == "*" && dow == "*" {
		return fmt.Sprintf("Every hour at :%02d", m)
	}

	// Fixed minute and hour, every day.
	if h, ok := atoi(hour); ok && dom == "*" && mon == "*" && dow == "*" {
		return "Every day at " + clock12(h, m)
	}

	// Fixed minute, several hours a day.
	if strings.Contains(hour, ",") && dom == "*" && mon == "*" && dow == "*" {
		parts := strings.Split(hour, ",")
		times := make([]string, 0, len(parts))
		for _, p := range parts {
			h, ok := atoi(strings.TrimSpace(p))
			if !ok {
				return "Cron: " + expr
			}
			times = append(times, clock12(h, m))
		}
		return "Daily at " + strings.Join(times, " and ")
	}

	// Fixed minute, hour, and weekday.
	if h, ok := atoi(hour); ok && dom == "*" && mon == "*" {
		if wd, ok := atoi(dow); ok && wd >= 0 && wd <= 6 {
			return fmt.Sprintf("Every %s at %s", weekdayNames[wd], clock12(h, m))
		}
	}

	return "Cron: " + expr
}

func stepMinute(field string) (int, bool) {
	rest, ok := strings.CutPrefix(field, "*/")
	if !ok {
		return 0, false
	}
	return atoi(rest)
}

func hourRange(field string) (from, to int, ok bool) {
	a, b, found := strings.Cut(field, "-")
	if !found {
		return 0, 0, false
	}
	from, ok1 := atoi(a)
	to, ok2 := atoi(b)
	return from, to, ok1 && ok2
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// hour12 renders an hour-only label: 0 -> 12 AM, 12 -> 12 PM.
func hour12(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h == 12:
		return "12 PM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// clock12 renders h:mm with AM/PM and no leading zero on the hour.
func clock12(h, m int) string {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}
