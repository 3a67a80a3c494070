package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/internal/store"
)

const testActivity = `[
	{"timestamp": "2026-08-30T09:00:00Z", "type": "tool", "content": "Read file", "session": "s1"},
	{"timestamp": "2026-08-30T08:55:00Z", "type": "message", "content": "Hello", "session": "s1"},
	{"timestamp": "2026-08-30T08:00:00Z", "type": "cron", "content": "Digest ran"}
]`

const testCron = `[
	{"id": "job_1", "name": "Morning digest", "schedule": {"kind": "cron", "expr": "30 8 * * *", "tz": "UTC"},
	 "model": "anthropic/claude-opus", "status": "ok", "lastRun": "2026-08-30T08:30:00Z"},
	{"id": "job_2", "name": "One-off", "schedule": {"kind": "at", "at": "2026-09-01T10:00:00Z"}}
]`

const testSearch = `[
	{"file": "memory/notes.md", "type": "memory", "content": "the fox jumped over the fence"},
	{"file": "sessions/s1.md", "type": "session", "content": "we discussed the fox at length"}
]`

func loadedStore(t *testing.T) *store.Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		store.ActivityFile: testActivity,
		store.CronFile:     testCron,
		store.SearchFile:   testSearch,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	st := store.New()
	require.NoError(t, st.Load(context.Background(), dir))
	return st
}

func erroredStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	require.Error(t, st.Load(context.Background(), filepath.Join(t.TempDir(), "missing")))
	return st
}

func testRouter(st *store.Store) http.Handler {
	r := chi.NewRouter()
	ah := &ActivityHandler{Store: st}
	jh := &JobsHandler{Store: st}
	ch := &CalendarHandler{Store: st}
	sh := &SearchHandler{Store: st}
	r.Get("/activity", ah.List)
	r.Get("/activity/stats", ah.Stats)
	r.Get("/jobs", jh.List)
	r.Get("/jobs/{id}", jh.Get)
	r.Get("/calendar/week", ch.Week)
	r.Get("/search", sh.Query)
	return r
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestActivityList(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/activity")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "all", body["filter"])
	assert.EqualValues(t, 3, body["count"])
	items := body["items"].([]any)
	require.Len(t, items, 3)
	first := items[0].(map[string]any)
	assert.Equal(t, "tool", first["type"])
	assert.Equal(t, "Read file", first["content"])
	assert.NotEmpty(t, first["timeLabel"])
}

func TestActivityList_Filter(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/activity?filter=message")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "message", body["filter"])
	assert.EqualValues(t, 1, body["count"])
}

func TestActivityList_InvalidFilter(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/activity?filter=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid filter", body["error"])
}

func TestActivityList_LoadError(t *testing.T) {
	h := testRouter(erroredStore(t))

	rec, body := doGet(t, h, "/activity")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to load activity data", body["error"])
}

func TestActivityStats(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/activity/stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 1, body["tool"])
	assert.EqualValues(t, 1, body["messages"])
	assert.EqualValues(t, 1, body["cron"])
}

func TestJobsList(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/jobs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["count"])
	items := body["items"].([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "job_1", first["id"])
	assert.Equal(t, "Every day at 8:30 AM (UTC)", first["schedule"])
	assert.Equal(t, true, first["recurring"])
	assert.NotEmpty(t, first["nextRun"])

	second := items[1].(map[string]any)
	assert.Equal(t, false, second["recurring"])
}

func TestJobsGet(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/jobs/job_1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Morning digest", body["name"])
	assert.Equal(t, "Compiles a digest of recent activity", body["description"])
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["statusClass"])
	assert.NotEmpty(t, body["lastRun"])

	handler := body["handler"].(map[string]any)
	assert.Equal(t, "claude-opus", handler["label"])
	assert.Equal(t, "anthropic/claude-opus", handler["full"])
}

func TestJobsGet_Defaults(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/jobs/job_2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unknown", body["status"])
	assert.Equal(t, "pending", body["statusClass"])
	assert.Nil(t, body["handler"])
	assert.Nil(t, body["lastRun"])
}

func TestJobsGet_NotFound(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/jobs/job_404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "job not found", body["error"])
}

func TestCalendarWeek(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/calendar/week?start=2026-08-26")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "August 2026", body["title"])
	assert.Equal(t, "2026-08-23", body["weekStart"])
	assert.Equal(t, "2026-08-16", body["prev"])
	assert.Equal(t, "2026-08-30", body["next"])
	assert.NotEmpty(t, body["today"])

	days := body["days"].([]any)
	assert.Len(t, days, 7)
}

func TestCalendarWeek_BadStart(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/calendar/week?start=yesterday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "invalid start date")
}

func TestSearchQuery(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/search?q=fox")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SearchStateOK, body["state"])
	assert.Equal(t, "fox", body["query"])
	assert.EqualValues(t, 2, body["total"])

	results := body["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, "memory/notes.md", first["file"])
	assert.Contains(t, first["snippet"], "<mark>fox</mark>")
}

func TestSearchQuery_Prompt(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/search")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SearchStatePrompt, body["state"])
	assert.EqualValues(t, 0, body["total"])
	assert.Empty(t, body["results"])
}

func TestSearchQuery_NoMatches(t *testing.T) {
	h := testRouter(loadedStore(t))

	rec, body := doGet(t, h, "/search?q=zebra")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SearchStateEmpty, body["state"])
	assert.EqualValues(t, 0, body["total"])
	assert.Empty(t, body["results"])
}

func TestJSONErrorContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, "boom", http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
