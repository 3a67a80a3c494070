package models

import "time"

// CronJob is a read-only snapshot of one scheduled job as exported by the
// agent's job scheduler. NextRuns is sorted ascending; the calendar assumes
// the first run landing on a day is representative for that day.
type CronJob struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Schedule    Schedule    `json:"schedule"`
	NextRuns    []Timestamp `json:"nextRuns"`
	LastRun     Timestamp   `json:"lastRun,omitzero"`
	Model       string      `json:"model,omitempty"`
	Script      string      `json:"script,omitempty"`
	Status      string      `json:"status,omitempty"`
	Description string      `json:"description,omitempty"`
}

// NextRun returns the earliest upcoming run, or the zero time when the job
// has none scheduled.
func (j CronJob) NextRun() time.Time {
	if len(j.NextRuns) == 0 {
		return time.Time{}
	}
	return j.NextRuns[0].Time
}
