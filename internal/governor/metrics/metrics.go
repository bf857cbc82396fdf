package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the governor module.
type Metrics struct {
	// Audit passes by verdict
	Audits *prometheus.CounterVec

	// Rejected transactions by the rule that rejected them
	NonCompliant *prometheus.CounterVec

	// Launch attempts by result
	Launches *prometheus.CounterVec

	AuditLatency prometheus.Histogram
}

// New creates the governor metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Audits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "launchgate_governor_audits_total",
			Help: "Total ecosystem audit passes by compliance verdict",
		}, []string{"verdict"}), // verdict: "yes", "no"

		NonCompliant: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "launchgate_governor_non_compliant_transactions_total",
			Help: "Total non-compliant transactions found during audits by rejection reason",
		}, []string{"reason"}),

		Launches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "launchgate_governor_launch_attempts_total",
			Help: "Total launch attempts by result",
		}, []string{"result"}), // result: "launched", "aborted", "already_launched"

		AuditLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "launchgate_governor_audit_duration_seconds",
			Help:    "Duration of a full ecosystem audit pass",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// IncrementAudit records a completed audit pass.
func (m *Metrics) IncrementAudit(compliant bool) {
	if m != nil {
		verdict := "no"
		if compliant {
			verdict = "yes"
		}
		m.Audits.WithLabelValues(verdict).Inc()
	}
}

// IncrementNonCompliant records one rejected transaction.
func (m *Metrics) IncrementNonCompliant(reason string) {
	if m != nil {
		m.NonCompliant.WithLabelValues(reason).Inc()
	}
}

// IncrementLaunch records a launch attempt outcome.
func (m *Metrics) IncrementLaunch(result string) {
	if m != nil {
		m.Launches.WithLabelValues(result).Inc()
	}
}

// ObserveAuditLatency records the duration of an audit pass.
func (m *Metrics) ObserveAuditLatency(d time.Duration) {
	if m != nil {
		m.AuditLatency.Observe(d.Seconds())
	}
}
