package models

import "time"

// Reservation statuses. Only PENDING and CONFIRMED occupy tables.
const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusNoShow    = "NO_SHOW"
)

// OccupyingStatuses are the statuses counted by conflict detection.
var OccupyingStatuses = []string{ReservationStatusPending, ReservationStatusConfirmed}

// Reservation is a booked party holding one or more tables for the half-open
// interval [Time, Time+EstimatedDurationMinutes). Reservations are never
// deleted, only cancelled.
type Reservation struct {
	ID           string   `bson:"id" json:"id"`
	RestaurantID string   `bson:"restaurantId" json:"restaurantId"`
	ServiceID    string   `bson:"serviceId" json:"serviceId"`
	TableIDs     []string `bson:"tableIds" json:"tableIds"`

	Date      string `bson:"date" json:"date"` // "2006-01-02"
	Time      string `bson:"time" json:"time"` // "HH:MM"
	PartySize int    `bson:"partySize" json:"partySize"`

	// EstimatedDurationMinutes is copied from the governing service at
	// creation time and is the duration used for conflict math thereafter.
	EstimatedDurationMinutes int `bson:"estimatedDurationMinutes" json:"estimatedDurationMinutes"`

	// StartMinutes/EndMinutes denormalize the occupied interval in minutes
	// from midnight so the transactional conflict re-check can run as an
	// indexable range query.
	StartMinutes int `bson:"startMinutes" json:"-"`
	EndMinutes   int `bson:"endMinutes" json:"-"`

	Status string `bson:"status" json:"status"`

	CustomerName  string `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone string `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Occupies reports whether the reservation blocks its tables.
func (r *Reservation) Occupies() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// IsTerminal reports whether the status permits no further transitions.
func IsTerminalStatus(status string) bool {
	return status == ReservationStatusCancelled || status == ReservationStatusNoShow
}

// ValidStatusTransition encodes the reservation lifecycle: PENDING may move to
// any other status, CONFIRMED may be cancelled or marked a no-show, terminal
// states are frozen.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return false
	}
	switch from {
	case ReservationStatusPending:
		return to == ReservationStatusConfirmed || to == ReservationStatusCancelled || to == ReservationStatusNoShow
	case ReservationStatusConfirmed:
		return to == ReservationStatusCancelled || to == ReservationStatusNoShow
	default:
		return false
	}
}
