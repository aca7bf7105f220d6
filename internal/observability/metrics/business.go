// Package metrics defines the application's business-level Prometheus metrics.
// HTTP-level metrics (request counts, latency) live in the handler layer; the
// counters here track domain events regardless of which route triggered them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ArticleMutationsTotal counts article create/update/delete operations.
	ArticleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_article_mutations_total",
			Help: "Total number of article mutations by operation",
		},
		[]string{"operation"},
	)

	// ProjectMutationsTotal counts project create/update/delete operations.
	ProjectMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_project_mutations_total",
			Help: "Total number of project mutations by operation",
		},
		[]string{"operation"},
	)

	// FeedPreviewsTotal counts feed preview requests by outcome.
	FeedPreviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_feed_previews_total",
			Help: "Total number of feed preview requests by status",
		},
		[]string{"status"},
	)
)

// RecordArticleMutation records a completed article mutation.
// Operation should be one of "create", "update", "delete".
func RecordArticleMutation(operation string) {
	ArticleMutationsTotal.WithLabelValues(operation).Inc()
}

// RecordProjectMutation records a completed project mutation.
func RecordProjectMutation(operation string) {
	ProjectMutationsTotal.WithLabelValues(operation).Inc()
}

// RecordFeedPreview records the outcome of a feed preview request.
func RecordFeedPreview(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	FeedPreviewsTotal.WithLabelValues(status).Inc()
}
