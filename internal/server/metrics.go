package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts calculator requests by model and outcome
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "indumath_requests_total",
		Help: "Total calculator requests by model and outcome",
	}, []string{"model", "outcome"})

	// computeDuration tracks time spent inside a calculator
	computeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "indumath_compute_duration_seconds",
		Help:    "Calculator compute duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"model"})

	// lpProblemSize tracks the number of decision variables per solved problem
	lpProblemSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "indumath_lp_variables",
		Help:    "Number of decision variables per linear program",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)
