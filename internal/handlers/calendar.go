package handlers

import (
	"net/http"
	"time"

	"github.com/missionctl/missionctl/internal/schedule"
	"github.com/missionctl/missionctl/internal/store"
)

// CalendarHandler serves the 7-day job calendar.
type CalendarHandler struct {
	Store *store.Store
}

const dateParam = "2006-01-02"

// Week returns the calendar grid for the week containing the "start" query
// date (default: this week). The response carries the week starts for
// prev/next/today navigation so clients only shift by whole weeks.
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	base := now
	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.ParseInLocation(dateParam, s, time.Local)
		if err != nil {
			JSONError(w, "invalid start date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		base = t
	}

	weekStart := schedule.WeekStart(base)
	days := schedule.BuildWeek(h.Store.Jobs(), weekStart, now)

	writeJSON(w, map[string]any{
		"title":     weekStart.Format("January 2006"),
		"weekStart": weekStart.Format(dateParam),
		"prev":      weekStart.AddDate(0, 0, -7).Format(dateParam),
		"next":      weekStart.AddDate(0, 0, 7).Format(dateParam),
		"today":     schedule.WeekStart(now).Format(dateParam),
		"days":      days,
	})
}
