package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/missionctl/missionctl/internal/config"
	"github.com/missionctl/missionctl/internal/handlers"
	"github.com/missionctl/missionctl/internal/middleware"
	"github.com/missionctl/missionctl/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.LogFormat)

	st := store.New()
	if err := st.Load(context.Background(), cfg.DataDir); err != nil {
		// Serve anyway: the activity endpoint reports the failure, the
		// other views fall back to their empty states.
		slog.Error("serving with empty data", "error", err)
	}

	r := newRouter(st, cfg)

	useTLS := cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""
	slog.Info("mission control API listening", "port", cfg.Port, "tls", useTLS, "data_dir", cfg.DataDir)
	if useTLS {
		log.Fatal(http.ListenAndServeTLS(":"+cfg.Port, cfg.TLSCertFile, cfg.TLSKeyFile, r))
	}
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// newRouter builds the full API router with the standard middleware chain.
func newRouter(st *store.Store, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if st.State() != store.StateLoaded {
			handlers.JSONError(w, "data not loaded", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	activityH := &handlers.ActivityHandler{Store: st}
	jobsH := &handlers.JobsHandler{Store: st}
	calendarH := &handlers.CalendarHandler{Store: st}
	searchH := &handlers.SearchHandler{Store: st}

	r.Get("/activity", activityH.List)
	r.Get("/activity/stats", activityH.Stats)
	r.Get("/jobs", jobsH.List)
	r.Get("/jobs/{id}", jobsH.Get)
	r.Get("/calendar/week", calendarH.Week)

	searchLimiter := middleware.SearchRateLimiter(cfg.SearchRatePerMin)
	r.Group(func(r chi.Router) {
		r.Use(searchLimiter.Middleware)
		r.Get("/search", searchH.Query)
	})

	return r
}

func setupLogger(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
}
