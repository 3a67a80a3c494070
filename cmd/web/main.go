// Mission Control web UI: renders the agent dashboard (activity feed,
// weekly job calendar, memory/session search) from the API's JSON.
package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/missionctl/missionctl/internal/config"
)

func main() {
	cfg := config.Load()

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/activity", http.StatusFound)
	})
	r.Get("/activity", activityPage(cfg.APIBase))
	r.Get("/calendar", calendarPage(cfg.APIBase))
	r.Get("/jobs/{id}", jobPage(cfg.APIBase))
	r.Get("/search", searchPage)
	r.Get("/search/results", searchResults(cfg.APIBase))

	log.Printf("Mission Control UI on http://localhost:%s (API: %s)", cfg.WebPort, cfg.APIBase)
	if err := http.ListenAndServe(":"+cfg.WebPort, r); err != nil {
		log.Fatal(err)
	}
}

// ── API client ────────────────────────────────────────────────────────────────

// apiGet fetches a JSON document from the API and decodes it into out.
// Non-200 responses surface the API's error message when it sends one.
func apiGet(apiBase, path string, out any) error {
	resp, err := http.Get(apiBase + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("api returned %d", resp.StatusCode)
	}
	return json.Unmarshal(data, out)
}

// ── View models (shapes of the API responses) ────────────────────────────────

type activityData struct {
	Filter string `json:"filter"`
	Count  int    `json:"count"`
	Items  []struct {
		Type      string `json:"type"`
		Content   string `json:"content"`
		TimeLabel string `json:"timeLabel"`
	} `json:"items"`
}

type statsData struct {
	Total    int `json:"total"`
	Tool     int `json:"tool"`
	Messages int `json:"messages"`
	Cron     int `json:"cron"`
}

type calendarData struct {
	Title     string `json:"title"`
	WeekStart string `json:"weekStart"`
	Prev      string `json:"prev"`
	Next      string `json:"next"`
	Today     string `json:"today"`
	Days      []struct {
		Label   string `json:"label"`
		IsToday bool   `json:"isToday"`
		Events  []struct {
			JobID     string `json:"jobId"`
			Name      string `json:"name"`
			Time      string `json:"time"`
			Recurring bool   `json:"recurring"`
		} `json:"events"`
	} `json:"days"`
}

type jobData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Schedule    string `json:"schedule"`
	Description string `json:"description"`
	NextRun     string `json:"nextRun"`
	LastRun     string `json:"lastRun"`
	Handler     *struct {
		Label string `json:"label"`
		Full  string `json:"full"`
	} `json:"handler"`
	Script      string `json:"script"`
	Status      string `json:"status"`
	StatusClass string `json:"statusClass"`
}

type searchData struct {
	State   string `json:"state"`
	Query   string `json:"query"`
	Total   int    `json:"total"`
	Results []struct {
		File    string `json:"file"`
		Type    string `json:"type"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

// ── Pages ─────────────────────────────────────────────────────────────────────

func activityPage(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		if filter == "" {
			filter = "all"
		}

		var stats statsData
		_ = apiGet(apiBase, "/activity/stats", &stats)

		var feed activityData
		loadErr := ""
		if err := apiGet(apiBase, "/activity?filter="+url.QueryEscape(filter), &feed); err != nil {
			// The load error belongs to this panel only; calendar and
			// search keep working off their empty collections.
			loadErr = err.Error()
		}

		render(w, tmplActivity, map[string]any{
			"Tab":     "activity",
			"Filter":  filter,
			"Stats":   stats,
			"Feed":    feed,
			"LoadErr": loadErr,
		})
	}
}

func calendarPage(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := "/calendar/week"
		if s := r.URL.Query().Get("start"); s != "" {
			path += "?start=" + url.QueryEscape(s)
		}
		var cal calendarData
		if err := apiGet(apiBase, path, &cal); err != nil {
			slog.Warn("calendar fetch failed", "error", err)
		}
		render(w, tmplCalendar, map[string]any{"Tab": "calendar", "Cal": cal})
	}
}

func jobPage(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var job jobData
		if err := apiGet(apiBase, "/jobs/"+url.PathEscape(id), &job); err != nil {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		render(w, tmplJob, map[string]any{"Tab": "calendar", "Job": job})
	}
}

func searchPage(w http.ResponseWriter, r *http.Request) {
	render(w, tmplSearch, map[string]any{"Tab": "search", "Query": r.URL.Query().Get("q")})
}

// searchResults returns an HTML fragment; the page script swaps it in after
// the 300ms debounce window passes without another keystroke.
func searchResults(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res searchData
		if err := apiGet(apiBase, "/search?q="+url.QueryEscape(r.URL.Query().Get("q")), &res); err != nil {
			http.Error(w, "search unavailable", http.StatusBadGateway)
			return
		}
		renderFragment(w, tmplSearchResults, res)
	}
}

// ── Rendering ─────────────────────────────────────────────────────────────────

var funcMap = template.FuncMap{
	// Snippets arrive pre-escaped with <mark> highlights from the API.
	"safe": func(s string) template.HTML { return template.HTML(s) },
}

func render(w http.ResponseWriter, tmplStr string, data any) {
	t, err := template.New("page").Funcs(funcMap).Parse(tmplBase + tmplStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		slog.Warn("template execute failed", "error", err)
	}
}

func renderFragment(w http.ResponseWriter, tmplStr string, data any) {
	t, err := template.New("fragment").Funcs(funcMap).Parse(tmplStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := t.Execute(w, data); err != nil {
		slog.Warn("template execute failed", "error", err)
	}
}
