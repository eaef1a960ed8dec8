package reservationRepo

import (
	"context"
	"errors"

	"mesafy/models"
)

// ErrTablesTaken signals that a transactional create or reschedule lost the
// race: another reservation claimed an overlapping interval on at least one of
// the requested tables between the caller's availability check and the
// insert. The caller may re-check and retry.
var ErrTablesTaken = errors.New("requested tables already taken for an overlapping interval")

// ErrNotFound is returned when a reservation id does not exist.
var ErrNotFound = errors.New("reservation not found")

// ReservationRepository defines access to reservation records. Reservations
// are never deleted, only moved through their status lifecycle.
type ReservationRepository interface {
	// ListOccupying returns the PENDING and CONFIRMED reservations of a
	// restaurant on a date; CANCELLED and NO_SHOW never block availability.
	ListOccupying(ctx context.Context, restaurantID, date string) ([]models.Reservation, error)

	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)

	// CreateIfTablesFree inserts the reservation inside a transaction that
	// first re-verifies no occupying reservation overlaps the requested
	// tables and interval. Returns ErrTablesTaken when the race is lost.
	CreateIfTablesFree(ctx context.Context, res *models.Reservation) error

	// Reschedule moves an existing reservation to a new date/time/tables
	// under the same transactional conflict re-check, ignoring the
	// reservation itself. Returns ErrTablesTaken when the race is lost.
	Reschedule(ctx context.Context, res *models.Reservation) error

	UpdateStatus(ctx context.Context, reservationID, status string) error

	// ListPendingThrough returns PENDING reservations dated on or before the
	// given date, used by the no-show sweep. A reservation left PENDING on a
	// past date stays in scope until the sweep resolves it.
	ListPendingThrough(ctx context.Context, date string) ([]models.Reservation, error)
}
