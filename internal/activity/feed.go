// Package activity filters and summarizes the agent activity feed.
package activity

import (
	"github.com/missionctl/missionctl/internal/models"
)

// MaxEntries caps how many entries a single feed render returns.
const MaxEntries = 100

// FilterAll passes every entry; the other accepted filters are the entry
// type constants in models.
const FilterAll = "all"

// ValidFilter reports whether f is an accepted feed filter.
func ValidFilter(f string) bool {
	switch f {
	case FilterAll, models.ActivityTool, models.ActivityMessage, models.ActivityCron:
		return true
	}
	return false
}

// Filter returns at most MaxEntries entries matching f, preserving the
// input order (newest first as loaded).
func Filter(entries []models.ActivityEntry, f string) []models.ActivityEntry {
	out := make([]models.ActivityEntry, 0, min(len(entries), MaxEntries))
	for _, e := range entries {
		if f != FilterAll && e.Type != f {
			continue
		}
		out = append(out, e)
		if len(out) == MaxEntries {
			break
		}
	}
	return out
}

// Stats are aggregate counts over the full, unfiltered feed.
type Stats struct {
	Total    int `json:"total"`
	Tool     int `json:"tool"`
	Messages int `json:"messages"`
	Cron     int `json:"cron"`
}

// Count tallies entries by type. It always runs over the whole collection,
// independent of any active filter.
func Count(entries []models.ActivityEntry) Stats {
	s := Stats{Total: len(entries)}
	for _, e := range entries {
		switch e.Type {
		case models.ActivityTool:
			s.Tool++
		case models.ActivityMessage:
			s.Messages++
		case models.ActivityCron:
			s.Cron++
		}
	}
	return s
}
