// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors exposed on /metrics.
// Collectors count events only; no answer or score value is recorded
// beyond its interpretation band.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "perma_sessions_started_total",
			Help: "Total number of survey sessions started",
		},
	)

	// Labelled by interpretation band
	SessionsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perma_sessions_submitted_total",
			Help: "Total number of survey submissions",
		},
		[]string{"interpretation"},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "perma_sessions_evicted_total",
			Help: "Total number of idle sessions dropped by the sweeper",
		},
	)

	// archived: true/false
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perma_exports_total",
			Help: "Total number of result exports",
		},
		[]string{"archived"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "perma_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RegisterLiveSessions exposes the number of in-memory sessions. Call once
// at startup.
func RegisterLiveSessions(count func() int) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "perma_sessions_live",
			Help: "Current number of in-memory sessions",
		},
		func() float64 { return float64(count()) },
	))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
