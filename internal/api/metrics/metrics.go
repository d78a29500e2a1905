// Package metrics defines and registers all custom Prometheus metrics for
// the hotel management API. It is the single source of truth for metric
// names, labels, and help strings; registration happens at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hms"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid", "locked" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected at the auth middleware.
// Label:
//   - reason: "missing", "expired", "invalid" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by auth or RBAC checks.",
	},
	[]string{"reason"},
)

// HashPoolDepth tracks how many hash jobs are queued per worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var HashPoolDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hash_pool_depth",
		Help:      "Current number of password-hash jobs pending per worker.",
	},
	[]string{"worker_id"},
)

// HashDuration measures how long a single bcrypt operation takes.
// Label:
//   - op: "hash" or "compare"
var HashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "hash_duration_seconds",
		Help:      "Duration of password hash and compare operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - charge_type: "Hour" or "Night"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by charge type.",
	},
	[]string{"charge_type"},
)

// CheckoutsTotal counts completed checkouts.
// Label:
//   - settlement: "settled" when an auto-payment covered a remainder,
//     "prepaid" when nothing was owed
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of completed checkouts, by settlement kind.",
	},
	[]string{"settlement"},
)
