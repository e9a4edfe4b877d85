// Package metrics defines all custom Prometheus metrics for the user admin
// API. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "useradmin"

// RoleAssignmentsTotal counts successful role assignments.
// Label:
//   - role: the requested role string (unrecognised roles appear verbatim)
var RoleAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_assignments_total",
		Help:      "Total number of role assignments applied.",
	},
	[]string{"role"},
)

// UsersProvisionedTotal counts successfully provisioned users.
// Label:
//   - role: the initial role requested for the new identity
var UsersProvisionedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_provisioned_total",
		Help:      "Total number of users provisioned.",
	},
	[]string{"role"},
)

// PermissionDeniedTotal counts requests rejected by the permission gate.
// Label:
//   - operation: "assign_role" or "provision_user"
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of operations rejected for missing claims.",
	},
	[]string{"operation"},
)

// ResetLinksIssuedTotal counts credential-reset links minted during
// provisioning.
var ResetLinksIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_links_issued_total",
		Help:      "Total number of credential reset links issued.",
	},
)

// ResetTokensRedeemedTotal counts credential-reset completions.
// Label:
//   - result: "success" or "invalid" (unknown, expired, or replayed token)
var ResetTokensRedeemedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_tokens_redeemed_total",
		Help:      "Total number of reset token redemptions, by result.",
	},
	[]string{"result"},
)
