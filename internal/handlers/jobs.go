package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/missionctl/missionctl/internal/models"
	"github.com/missionctl/missionctl/internal/schedule"
	"github.com/missionctl/missionctl/internal/store"
)

// JobsHandler serves the scheduled job list and per-job detail.
type JobsHandler struct {
	Store *store.Store
}

type jobSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Schedule  string `json:"schedule"`
	Status    string `json:"status"`
	NextRun   string `json:"nextRun"`
	Recurring bool   `json:"recurring"`
}

type handlerInfo struct {
	Label string `json:"label"`
	Full  string `json:"full"`
}

type jobDetail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Schedule    string       `json:"schedule"`
	Description string       `json:"description"`
	NextRun     string       `json:"nextRun"`
	LastRun     string       `json:"lastRun,omitempty"`
	Handler     *handlerInfo `json:"handler,omitempty"`
	Script      string       `json:"script,omitempty"`
	Status      string       `json:"status"`
	StatusClass string       `json:"statusClass"`
}

// List returns all jobs with humanized schedules.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	jobs := h.Store.Jobs()
	items := make([]jobSummary, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, jobSummary{
			ID:        j.ID,
			Name:      j.Name,
			Schedule:  schedule.Humanize(j.Schedule, now),
			Status:    statusText(j),
			NextRun:   nextRunLabel(j, now),
			Recurring: j.Schedule.IsRecurring(),
		})
	}
	writeJSON(w, map[string]any{"count": len(items), "items": items})
}

// Get returns the detail view for one job.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, ok := h.Store.JobByID(id)
	if !ok {
		JSONError(w, "job not found", http.StatusNotFound)
		return
	}

	now := time.Now()
	detail := jobDetail{
		ID:          job.ID,
		Name:        job.Name,
		Schedule:    schedule.Humanize(job.Schedule, now),
		Description: schedule.Describe(job),
		NextRun:     nextRunLabel(job, now),
		Script:      job.Script,
		Status:      statusText(job),
		StatusClass: statusClass(job),
	}
	if !job.LastRun.IsZero() {
		detail.LastRun = schedule.FormatDateTime(now, job.LastRun.Time)
	}
	if job.Model != "" {
		detail.Handler = &handlerInfo{Label: schedule.HandlerLabel(job.Model), Full: job.Model}
	}
	writeJSON(w, detail)
}

func nextRunLabel(job models.CronJob, now time.Time) string {
	next := job.NextRun()
	if next.IsZero() {
		return "Not scheduled"
	}
	return schedule.FormatDateTime(now, next)
}

func statusText(job models.CronJob) string {
	if job.Status == "" {
		return "unknown"
	}
	return job.Status
}

func statusClass(job models.CronJob) string {
	if job.Status == "" {
		return "pending"
	}
	return job.Status
}
