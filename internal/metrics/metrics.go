package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the outcome of a single run on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

func New() *Metrics {
	m := &Metrics{
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	m.registry.MustRegister(m.prometheus.collectors()...)
	return m
}

// Observe records the evaluation result of the given model.
func (m *Metrics) Observe(model string, accuracy float64, train, test int, fit time.Duration) {
	m.prometheus.Accuracy.WithLabelValues(model).Set(accuracy)
	m.prometheus.Samples.WithLabelValues("train").Set(float64(train))
	m.prometheus.Samples.WithLabelValues("test").Set(float64(test))
	m.prometheus.Fit.WithLabelValues(model).Set(fit.Seconds())
}

// WriteTo dumps the registry in the text exposition format,
// for the node exporter textfile collector to pick up.
func (m *Metrics) WriteTo(file string) error {
	if err := prometheus.WriteToTextfile(file, m.registry); err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", file, err)
	}
	return nil
}
