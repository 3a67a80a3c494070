package schedule

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/missionctl/missionctl/internal/models"
)

// Projection limits match the upstream generator: runs are computed over a
// 14-day horizon with at most 50 occurrences per job.
const (
	projectionHorizon = 14 * 24 * time.Hour
	projectionCap     = 50
)

// Day is one cell of the weekly calendar grid.
type Day struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	IsToday bool      `json:"isToday"`
	Events  []Event   `json:"events"`
}

// Event is one job occurrence shown on a calendar day.
type Event struct {
	JobID     string `json:"jobId"`
	Name      string `json:"name"`
	Time      string `json:"time"`
	Recurring bool   `json:"recurring"`
}

// WeekStart returns the most recent Sunday at or before t, at local
// midnight. It is idempotent: WeekStart(WeekStart(t)) == WeekStart(t).
func WeekStart(t time.Time) time.Time {
	local := t.Local()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// BuildWeek buckets jobs into the 7 days starting at weekStart (Sun..Sat).
// A job appears on a day when any of its next runs lands on that local
// calendar day; the first such run supplies the displayed time.
func BuildWeek(jobs []models.CronJob, weekStart, now time.Time) [7]Day {
	var days [7]Day
	for i := range days {
		date := weekStart.AddDate(0, 0, i)
		day := Day{Date: date, Label: date.Format("Mon 2"), IsToday: sameDay(date, now), Events: []Event{}}
		for _, job := range jobs {
			for _, run := range job.NextRuns {
				if run.IsZero() || !sameDay(run.Time, date) {
					continue
				}
				day.Events = append(day.Events, Event{
					JobID:     job.ID,
					Name:      job.Name,
					Time:      clock12(run.Local().Hour(), run.Local().Minute()),
					Recurring: job.Schedule.IsRecurring(),
				})
				break
			}
		}
		days[i] = day
	}
	return days
}

// ProjectRuns fills in upcoming runs for a cron-scheduled job that arrived
// without any. The expression is parsed with the standard 5-field parser in
// the job's timezone when one is given.
func ProjectRuns(job models.CronJob, now time.Time) []models.Timestamp {
	if len(job.NextRuns) > 0 || job.Schedule.Kind != models.ScheduleCron {
		return job.NextRuns
	}

	loc := time.Local
	if job.Schedule.TZ != "" {
		if l, err := time.LoadLocation(job.Schedule.TZ); err == nil {
			loc = l
		}
	}

	sched, err := cron.ParseStandard(job.Schedule.Expr)
	if err != nil {
		return nil
	}

	var runs []models.Timestamp
	end := now.Add(projectionHorizon)
	for next := sched.Next(now.In(loc)); !next.IsZero() && next.Before(end) && len(runs) < projectionCap; next = sched.Next(next) {
		runs = append(runs, models.Timestamp{Time: next})
	}
	return runs
}
