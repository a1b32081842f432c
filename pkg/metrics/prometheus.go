package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ReportsGenerated prometheus.Counter
	FlightsAudited   prometheus.Counter
	FlightsImported  prometheus.Counter
	FindingsTotal    *prometheus.CounterVec
	ReportDuration   prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates the audit metrics and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "The total number of inconsistency reports generated",
		}),
		FlightsAudited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_audited_total",
			Help:      "The total number of flight records checked across all reports",
		}),
		FlightsImported: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_imported_total",
			Help:      "The total number of flight records imported",
		}),
		FindingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "The total number of findings by rule",
		}, []string{"rule"}),
		ReportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_generation_seconds",
			Help:      "Time taken to load flights and generate a report",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
