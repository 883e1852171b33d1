// Package metrics defines all custom Prometheus metrics for the room-booking
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "room_booking"

// SignupsTotal counts completed user registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user registrations.",
	},
)

// SigninsTotal counts authentication attempts.
// Label:
//   - result: "success", "wrong_password" or "unknown_email"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts tokens denylisted by logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked via logout.",
	},
)

// BookingsCreatedTotal counts bookings created.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsApprovedTotal counts bookings flipped to approved.
var BookingsApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_approved_total",
		Help:      "Total number of bookings approved by moderators.",
	},
)

// AttendeeChangesTotal counts attendee link mutations.
// Label:
//   - op: "add" or "remove"
var AttendeeChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendee_changes_total",
		Help:      "Total number of attendee additions and removals on bookings.",
	},
	[]string{"op"},
)
