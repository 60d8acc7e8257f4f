// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

// Package metrics provides Prometheus instrumentation for the API layer and
// the scoring engines. All collectors are registered on the default registry
// via promauto and exposed by the /metrics endpoint.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Engine metrics. Computations are pure and fast, so counters matter
	// more than histograms here.
	EngineComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_computations_total",
			Help: "Total number of engine computations by module and operation",
		},
		[]string{"module", "operation"},
	)

	EngineComputationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_computation_errors_total",
			Help: "Total number of rejected engine computations",
		},
		[]string{"module", "operation", "reason"},
	)

	// Tuning registry metrics.
	TuningReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuning_reloads_total",
			Help: "Total number of tuning snapshot reloads",
		},
		[]string{"outcome"}, // "success", "invalid", "error"
	)

	TuningSnapshotTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tuning_snapshot_loaded_timestamp",
			Help: "Unix timestamp of the last successful tuning snapshot load",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordComputation records one engine call, successful or not.
func RecordComputation(module, operation string, err error) {
	EngineComputationsTotal.WithLabelValues(module, operation).Inc()
	if err != nil {
		EngineComputationErrors.WithLabelValues(module, operation, "rejected").Inc()
	}
}

// RecordTuningReload records a tuning snapshot reload attempt.
func RecordTuningReload(outcome string) {
	TuningReloadsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		TuningSnapshotTimestamp.SetToCurrentTime()
	}
}
