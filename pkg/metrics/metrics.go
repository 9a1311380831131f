package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seqcast/seqcast/pkg/estimator"
)

var (
	EstimatorBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seqcast",
			Subsystem: "estimator",
			Name:      "builds_total",
			Help:      "Estimator bundles built, by variant and result",
		},
		[]string{"variant", "result"},
	)
	ConfigurationRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seqcast",
			Subsystem: "estimator",
			Name:      "configuration_rejections_total",
			Help:      "Configurations rejected at validation time, by variant and offending field",
		},
		[]string{"variant", "field"},
	)
)

func init() {
	// Register custom metrics with the global prometheus registry
	prometheus.MustRegister(EstimatorBuilds, ConfigurationRejections)
}

// RecordBuild counts one estimator construction attempt.
func RecordBuild(variant string, err error) {
	if err == nil {
		EstimatorBuilds.WithLabelValues(variant, "ok").Inc()
		return
	}
	EstimatorBuilds.WithLabelValues(variant, "error").Inc()

	var cerr *estimator.ConfigurationError
	if errors.As(err, &cerr) {
		ConfigurationRejections.WithLabelValues(variant, cerr.Field).Inc()
	}
}
