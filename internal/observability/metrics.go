package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CasesCreatedTotal counts case records created through the API.
	CasesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caseboard_cases_created_total",
		Help: "Total number of cases created",
	})

	// CommentsCreatedTotal counts comments attached to cases.
	CommentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caseboard_comments_created_total",
		Help: "Total number of comments created",
	})

	// UploadsTotal counts stored uploads by file extension.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "caseboard_uploads_total",
		Help: "Total number of stored uploads by extension",
	}, []string{"extension"})

	// UploadsRejectedTotal counts uploads rejected during validation.
	UploadsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caseboard_uploads_rejected_total",
		Help: "Total number of rejected uploads",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "caseboard_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
