// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics records identity-insert runs as Prometheus metrics and
// pushes them to a Pushgateway at the end of a seeder job.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "seeder"

// IdentityInsertMetrics implements store.RunObserver.
type IdentityInsertMetrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewIdentityInsertMetrics creates the collectors on a private registry.
func NewIdentityInsertMetrics() *IdentityInsertMetrics {
	m := &IdentityInsertMetrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_insert_runs_total",
			Help:      "Explicit-key insert runs by table and outcome.",
		}, []string{"table", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "identity_insert_duration_seconds",
			Help:      "Duration of explicit-key insert runs that reached the database.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"table"}),
	}

	m.registry.MustRegister(m.runs, m.duration)
	return m
}

// ObserveRun counts one run. Runs that never reached the database (unknown
// entity type) carry a zero elapsed time and are not timed.
func (m *IdentityInsertMetrics) ObserveRun(table, outcome string, elapsed time.Duration) {
	m.runs.WithLabelValues(table, outcome).Inc()
	if elapsed > 0 {
		m.duration.WithLabelValues(table).Observe(elapsed.Seconds())
	}
}

// Gatherer exposes the private registry.
func (m *IdentityInsertMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Push sends the collected metrics to the Pushgateway at url under job,
// replacing earlier pushes of the same job.
func (m *IdentityInsertMetrics) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("error pushing metrics to %s: %w", url, err)
	}

	return nil
}
