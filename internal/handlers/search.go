package handlers

import (
	"net/http"
	"strings"

	"github.com/missionctl/missionctl/internal/metrics"
	"github.com/missionctl/missionctl/internal/search"
	"github.com/missionctl/missionctl/internal/store"
)

// Search result states. "prompt" means no query was given, "empty" means the
// query matched nothing; neither is an error.
const (
	SearchStatePrompt = "prompt"
	SearchStateEmpty  = "empty"
	SearchStateOK     = "ok"
)

// SearchHandler serves full-text search over the memory/session index.
type SearchHandler struct {
	Store *store.Store
}

// Query runs a case-insensitive substring search. Query param: q.
// Debouncing is the client's job; this endpoint just answers.
func (h *SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		metrics.IncSearchQueries(SearchStatePrompt)
		writeJSON(w, map[string]any{
			"state":   SearchStatePrompt,
			"query":   q,
			"total":   0,
			"results": []search.Result{},
		})
		return
	}

	results, total := h.Store.Index().Search(q)
	state := SearchStateOK
	if total == 0 {
		state = SearchStateEmpty
	}
	metrics.IncSearchQueries(state)
	if results == nil {
		results = []search.Result{}
	}

	writeJSON(w, map[string]any{
		"state":   state,
		"query":   q,
		"total":   total,
		"results": results,
	})
}
