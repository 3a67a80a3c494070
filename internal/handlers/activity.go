package handlers

import (
	"net/http"
	"time"

	"github.com/missionctl/missionctl/internal/activity"
	"github.com/missionctl/missionctl/internal/models"
	"github.com/missionctl/missionctl/internal/schedule"
	"github.com/missionctl/missionctl/internal/store"
)

// ActivityHandler serves the activity feed and its aggregate stats.
type ActivityHandler struct {
	Store *store.Store
}

type activityItem struct {
	Timestamp models.Timestamp `json:"timestamp"`
	Type      string           `json:"type"`
	Content   string           `json:"content"`
	Session   string           `json:"session,omitempty"`
	TimeLabel string           `json:"timeLabel"`
}

// List returns up to 100 feed entries. Query: filter (all|tool|message|cron,
// default all). When the overall data load failed this endpoint alone
// reports it; the other views keep their empty state.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Store.State() == store.StateError {
		JSONError(w, "failed to load activity data", http.StatusInternalServerError)
		return
	}

	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = activity.FilterAll
	}
	if !activity.ValidFilter(filter) {
		JSONError(w, "invalid filter", http.StatusBadRequest)
		return
	}

	now := time.Now()
	entries := activity.Filter(h.Store.Activity(), filter)
	items := make([]activityItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, activityItem{
			Timestamp: e.Timestamp,
			Type:      e.Type,
			Content:   e.Content,
			Session:   e.Session,
			TimeLabel: schedule.FormatRelative(now, e.Timestamp.Time),
		})
	}

	writeJSON(w, map[string]any{
		"filter": filter,
		"count":  len(items),
		"items":  items,
	})
}

// Stats returns counts over the full, unfiltered feed.
func (h *ActivityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, activity.Count(h.Store.Activity()))
}
