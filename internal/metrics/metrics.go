package metrics

import (
	"regexp"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// DocumentsLoaded is the number of items loaded per data source
	// (activity, cron, search). Set once at load time.
	DocumentsLoaded = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_documents_loaded",
			Help: "Number of items loaded per data source",
		},
		[]string{"source"},
	)

	// SearchQueriesTotal counts search queries by outcome (ok, empty, prompt).
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_search_queries_total",
			Help: "Total number of search queries by outcome",
		},
		[]string{"outcome"},
	)
)

var jobIDSegment = regexp.MustCompile(`/jobs/[^/]+`)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, DocumentsLoaded, SearchQueriesTotal)
}

// NormalizePath reduces label cardinality by collapsing job id segments.
// E.g. /jobs/cron_42 -> /jobs/{id}.
func NormalizePath(path string) string {
	return jobIDSegment.ReplaceAllString(path, "/jobs/{id}")
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// SetDocumentsLoaded records how many items a data source yielded at load.
func SetDocumentsLoaded(source string, n int) {
	DocumentsLoaded.WithLabelValues(source).Set(float64(n))
}

// IncSearchQueries increments the search query counter for the given
// outcome (ok, empty, prompt).
func IncSearchQueries(outcome string) {
	SearchQueriesTotal.WithLabelValues(outcome).Inc()
}
