package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "site_api_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_cache_misses_total",
			Help: "Number of cache misses",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// DocumentValidations tracks CPF/CNPJ checks by kind and outcome
	DocumentValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_document_validations_total",
			Help: "Number of CPF/CNPJ validations",
		},
		[]string{"kind", "result"},
	)

	// FormSubmissions tracks quote and newsletter submissions
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_form_submissions_total",
			Help: "Number of form submissions",
		},
		[]string{"form", "status"},
	)

	// CEPLookups tracks calls to the postal code service
	CEPLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_cep_lookups_total",
			Help: "Number of CEP lookups",
		},
		[]string{"status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_api_active_connections",
			Help: "Number of active connections",
		},
	)
)

// RecordDocumentValidation counts one CPF/CNPJ check under the valid or
// invalid result label.
func RecordDocumentValidation(kind string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	DocumentValidations.WithLabelValues(kind, result).Inc()
}
