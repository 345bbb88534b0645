package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/medibell/triage/internal/domain"
)

// Prediction pipeline Prometheus metrics.
var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "triage",
			Name:      "predictions_total",
			Help:      "Total number of completed classifications",
		},
		[]string{"backend", "label"},
	)

	PredictionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "triage",
			Name:      "prediction_duration_seconds",
			Help:      "End-to-end pipeline duration in seconds",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"backend"},
	)

	PipelineErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "triage",
			Name:      "pipeline_errors_total",
			Help:      "Total pipeline failures by error kind",
		},
		[]string{"backend", "kind"},
	)
)

var predictionMetricsRegistered bool

// RegisterPredictionMetrics registers the pipeline collectors exactly once.
// Called explicitly from the composition root (no init side effects).
func RegisterPredictionMetrics() {
	if predictionMetricsRegistered {
		return
	}
	prometheus.MustRegister(PredictionsTotal)
	prometheus.MustRegister(PredictionDuration)
	prometheus.MustRegister(PipelineErrorsTotal)
	predictionMetricsRegistered = true
}

// ErrorKind maps a pipeline error to a low-cardinality metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrShapeMismatch):
		return "shape_mismatch"
	case errors.Is(err, domain.ErrNotFinite):
		return "not_finite"
	case errors.Is(err, domain.ErrBadInput):
		return "bad_input"
	case errors.Is(err, domain.ErrArtifact):
		return "artifact"
	default:
		return "internal"
	}
}
