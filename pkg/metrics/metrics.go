// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SwitchDuration observes the end-to-end latency of the cycle-switch
	// hot path, in seconds. Budget: <50 ms p99.
	SwitchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "synckairos_switch_duration_seconds",
		Help:    "Latency of switchCycle operations.",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	})

	// CASConflicts counts optimistic-lock write rejections.
	CASConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "synckairos_cas_conflicts_total",
		Help: "Number of writes rejected by the store compare-and-set.",
	})

	// WSConnections tracks currently open WebSocket connections on this instance.
	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "synckairos_ws_connections",
		Help: "Open WebSocket connections on this instance.",
	})

	// WSMessagesSent counts messages delivered to WebSocket clients.
	WSMessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "synckairos_ws_messages_sent_total",
		Help: "Messages delivered to WebSocket clients.",
	})

	// AuditQueueDepth reports the audit queue backlog per queue state.
	AuditQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "synckairos_audit_queue_depth",
		Help: "Audit queue backlog by state (ready, scheduled, dead).",
	}, []string{"state"})

	// AuditJobs counts processed audit jobs by outcome
	// (completed, skipped, retried, dead).
	AuditJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synckairos_audit_jobs_total",
		Help: "Audit jobs processed by outcome.",
	}, []string{"outcome"})

	// StoreOpDuration observes state store operation latency by operation.
	StoreOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "synckairos_store_op_duration_seconds",
		Help:    "Latency of state store operations.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .5, 1, 5},
	}, []string{"op"})
)
