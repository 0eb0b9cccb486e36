// Package metrics defines and registers all custom Prometheus metrics for
// the reservation system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reserve"

// RoomOperationsTotal counts successful room workflow mutations.
// Label:
//   - action: "create", "edit", "approve", "close", or "delete"
var RoomOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "room_operations_total",
		Help:      "Total number of successful room workflow operations, by action.",
	},
	[]string{"action"},
)

// RoomsCreatedTotal counts newly created rooms.
// Label:
//   - type: "standard" or "vip"
var RoomsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of rooms created, by room type.",
	},
	[]string{"type"},
)

// AuthzDeniedTotal counts authorization guard refusals.
// Label:
//   - capability: the capability that was denied (e.g. "manage-rooms")
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of operations refused by the authorization guard.",
	},
	[]string{"capability"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
