package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraud_api",
			Name:      "predictions_total",
			Help:      "Predictions served, by outcome",
		},
		[]string{"outcome"},
	)

	PredictionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraud_api",
			Name:      "prediction_failures_total",
			Help:      "Failed prediction requests, by reason",
		},
		[]string{"reason"},
	)

	InferenceLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fraud_api",
			Name:      "inference_duration_seconds",
			Help:      "Classifier inference latency per request",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
