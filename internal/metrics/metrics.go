// Package metrics defines and registers all custom Prometheus metrics for the
// TradeCo board. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// (promauto); the /metrics route exposes them next to the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradeco"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "client", "tradesman" or "reader"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// RegistrationsTotal counts registration attempts.
// Label result: "success", "conflict" (identifier taken) or "invalid" (confirmation mismatch).
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsStartedTotal counts sessions opened.
// Label window: "default" or "remember".
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions started, by role and expiry window.",
	},
	[]string{"role", "window"},
)

// SessionsDestroyedTotal counts sessions ended.
// Label reason: "logout", "expired" or "orphaned" (account no longer exists).
var SessionsDestroyedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_destroyed_total",
		Help:      "Total number of sessions destroyed, by reason.",
	},
	[]string{"reason"},
)

// GuardRedirectsTotal counts protected-route requests bounced to a login form.
// Label reason: "anonymous" or "wrong_role".
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of protected-route redirects to a login form.",
	},
	[]string{"required_role", "reason"},
)

// ── Board metrics ─────────────────────────────────────────────────────────────

// JobsReservedTotal counts successful job reservations.
var JobsReservedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_reserved_total",
		Help:      "Total number of jobs reserved by tradesmen.",
	},
)

// ── Account event metrics ─────────────────────────────────────────────────────

// AccountEventsTotal counts processed account events, by type.
var AccountEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_events_total",
		Help:      "Total number of account events processed, by type.",
	},
	[]string{"type"},
)

// EventsQueueDepth tracks the number of events waiting in each dispatcher worker channel.
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventsDroppedTotal counts events discarded because a worker channel was full.
var EventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Total number of account events dropped on a full worker queue.",
	},
)

// EventProcessingDuration measures how long a single event takes to process.
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of account event processing from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"type"},
)
