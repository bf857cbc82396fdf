package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the synchronizer module.
type Metrics struct {
	Components  *prometheus.CounterVec
	Divergences prometheus.Counter
	Registered  prometheus.Gauge
}

// New creates the synchronizer metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Components: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "launchgate_sync_components_total",
			Help: "Total per-component synchronization steps by result",
		}, []string{"result"}), // result: "in_sync", "reconciled", "failed"

		Divergences: factory.NewCounter(prometheus.CounterOpts{
			Name: "launchgate_sync_divergences_total",
			Help: "Total component values found diverging from the canonical value",
		}),

		Registered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "launchgate_sync_registered_components",
			Help: "Current number of registered components",
		}),
	}
}

func (m *Metrics) IncrementComponent(result string) {
	if m != nil {
		m.Components.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncrementDivergences() {
	if m != nil {
		m.Divergences.Inc()
	}
}

func (m *Metrics) SetRegistered(count int) {
	if m != nil {
		m.Registered.Set(float64(count))
	}
}
