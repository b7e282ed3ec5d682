// Package metrics defines and registers all custom Prometheus metrics for the
// cleanmatch marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics self-register with the default Prometheus registry via promauto;
// the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cleanmatch"

// UsersRegisteredTotal counts completed registrations.
// Label:
//   - role: "customer" or "cleaner"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (wrong password and unknown email are
//     both "failure"; the split is deliberately not observable)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// OffersCreatedTotal counts offers successfully persisted.
var OffersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offers_created_total",
		Help:      "Total number of offers created.",
	},
)

// TokensRevokedTotal counts token-version bumps (logouts).
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of token revocations.",
	},
)

// DirectoryCacheTotal counts directory cache lookups.
// Label:
//   - result: "hit" or "miss"
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of directory cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
