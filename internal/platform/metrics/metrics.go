package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	governormetrics "launchgate/internal/governor/metrics"
	syncmetrics "launchgate/internal/synchronizer/metrics"
)

// Metrics holds the per-run registry and every module's collectors.
type Metrics struct {
	Registry     *prometheus.Registry
	Governor     *governormetrics.Metrics
	Synchronizer *syncmetrics.Metrics
}

// New creates a fresh registry and registers all module metrics plus the Go
// runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	return &Metrics{
		Registry:     reg,
		Governor:     governormetrics.New(reg),
		Synchronizer: syncmetrics.New(reg),
	}
}

// WriteTextfile writes the registry in the Prometheus text format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
