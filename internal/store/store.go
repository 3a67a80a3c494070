// Package store loads the three generated data files and holds them as a
// read-only in-memory snapshot for the API, web UI, and CLI to serve from.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/missionctl/missionctl/internal/metrics"
	"github.com/missionctl/missionctl/internal/models"
	"github.com/missionctl/missionctl/internal/schedule"
	"github.com/missionctl/missionctl/internal/search"
)

// Data file names, as written by the generator.
const (
	ActivityFile = "activity.json"
	CronFile     = "cron.json"
	SearchFile   = "search-index.json"
)

// State is the load lifecycle of a Store.
type State int

const (
	// StateNotLoaded means Load has not completed yet.
	StateNotLoaded State = iota
	// StateLoaded means the snapshot is ready (possibly with empty
	// collections where individual files were missing or malformed).
	StateLoaded
	// StateError means the load failed as a whole; the activity view
	// surfaces this, other views stay in their empty state.
	StateError
)

// Store is written exactly once by Load and read-only afterwards, so no
// locking is needed on the accessors.
type Store struct {
	state State
	err   error

	activity []models.ActivityEntry
	jobs     []models.CronJob
	docs     []models.SearchDocument
	index    *search.Index
}

// New returns an empty, not-yet-loaded store.
func New() *Store {
	return &Store{index: search.NewIndex(nil)}
}

// Load reads activity.json, cron.json, and search-index.json from dir in
// parallel. A failure in any single file degrades that collection to empty;
// only an unreadable data directory marks the whole store as errored.
func (s *Store) Load(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		s.state = StateError
		s.err = err
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		s.state = StateError
		s.err = fmt.Errorf("data directory: %w", err)
		slog.Error("data load failed", "dir", dir, "error", err)
		return s.err
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.activity = loadFile[models.ActivityEntry](filepath.Join(dir, ActivityFile))
	}()
	go func() {
		defer wg.Done()
		s.jobs = loadFile[models.CronJob](filepath.Join(dir, CronFile))
	}()
	go func() {
		defer wg.Done()
		s.docs = loadFile[models.SearchDocument](filepath.Join(dir, SearchFile))
	}()
	wg.Wait()

	// Jobs exported without precomputed runs still need calendar slots.
	now := time.Now()
	for i := range s.jobs {
		s.jobs[i].NextRuns = schedule.ProjectRuns(s.jobs[i], now)
	}

	s.index = search.NewIndex(s.docs)
	s.state = StateLoaded

	metrics.SetDocumentsLoaded("activity", len(s.activity))
	metrics.SetDocumentsLoaded("cron", len(s.jobs))
	metrics.SetDocumentsLoaded("search", len(s.docs))
	slog.Info("data loaded",
		"activity", len(s.activity),
		"jobs", len(s.jobs),
		"documents", len(s.docs))
	return nil
}

// loadFile reads and decodes one JSON array. Missing or malformed files
// degrade to an empty collection; the other views stay usable.
func loadFile[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("data file unavailable, using empty collection", "path", path, "error", err)
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("data file malformed, using empty collection", "path", path, "error", err)
		return []T{}
	}
	return out
}

// State returns the load lifecycle state.
func (s *Store) State() State { return s.state }

// Err returns the catastrophic load error, if any.
func (s *Store) Err() error { return s.err }

// Activity returns the full activity feed, newest first.
func (s *Store) Activity() []models.ActivityEntry { return s.activity }

// Jobs returns all scheduled jobs.
func (s *Store) Jobs() []models.CronJob { return s.jobs }

// JobByID looks a job up by its unique id.
func (s *Store) JobByID(id string) (models.CronJob, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.CronJob{}, false
}

// Index returns the search index over the loaded documents.
func (s *Store) Index() *search.Index { return s.index }
