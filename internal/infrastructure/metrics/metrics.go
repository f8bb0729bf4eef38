package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm_imobiliario"

// Operation outcomes used as the "status" label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// Lead store metrics
var (
	LeadOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_operations_total",
			Help:      "Total number of lead store operations against the remote table",
		},
		[]string{"operation", "status"},
	)

	LeadOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lead_operation_duration_seconds",
			Help:      "Lead store operation latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	LeadSessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lead_sessions_open",
			Help:      "Number of per-user lead stores currently held in memory",
		},
	)

	LeadCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_cache_results_total",
			Help:      "Lead list cache lookups by result",
		},
		[]string{"result"},
	)
)

// Contract template metrics
var (
	ContractTemplatesUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contract_templates_uploaded_total",
			Help:      "Total number of contract templates uploaded",
		},
	)

	ContractTemplateUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "contract_template_upload_bytes",
			Help:      "Size distribution of uploaded contract documents",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 7),
		},
	)
)
