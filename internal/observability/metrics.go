package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Submissions tracks intake outcomes
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_portal_submissions_total",
			Help: "Number of application submissions by outcome",
		},
		[]string{"outcome"},
	)

	// StoreOperations tracks persistence operations per tier
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_portal_store_operations_total",
			Help: "Number of store operations by operation, tier and status",
		},
		[]string{"operation", "tier", "status"},
	)

	// StoreFallbacks counts durable-tier failures that fell through to memory
	StoreFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "job_portal_store_fallbacks_total",
			Help: "Number of operations served by the fallback tier after a durable failure",
		},
	)

	// EvidenceUploads tracks document uploads to the image host
	EvidenceUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_portal_evidence_uploads_total",
			Help: "Number of evidence uploads by status",
		},
		[]string{"status"},
	)
)
