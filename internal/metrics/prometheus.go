package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "iris"

type Prometheus struct {
	Accuracy *prometheus.GaugeVec
	Samples  *prometheus.GaugeVec
	Fit      *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy",
				Help:      "Fraction of evaluation samples predicted correctly.",
			}, []string{"model"}),
		Samples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "samples",
				Help:      "Number of samples per subset.",
			}, []string{"subset"}),
		Fit: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fit_seconds",
				Help:      "Time spent fitting the model.",
			}, []string{"model"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Accuracy, p.Samples, p.Fit}
}
