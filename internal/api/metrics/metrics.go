// Package metrics defines and registers the custom Prometheus metrics for
// the launchpad platform API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "launchpad"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - outcome: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AuditWriteFailuresTotal counts audit entries that could not be persisted.
// Audit writes are best-effort; this counter is the only place such failures
// become visible outside the logs.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit entries dropped due to persistence errors.",
	},
)

// RateLimitRejectionsTotal counts requests rejected with 429.
// Label:
//   - scope: limiter scope ("login", "admin")
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected by the rate limiter, by scope.",
	},
	[]string{"scope"},
)

// ZohoRequestDuration measures round-trip time of downstream Zoho connector
// calls.
// Labels:
//   - endpoint: connector endpoint ("leads", "accounts", "create-lead", "health")
//   - outcome: "ok" or "error"
var ZohoRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "zoho_request_duration_seconds",
		Help:      "Duration of requests to the Zoho connector service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "outcome"},
)
