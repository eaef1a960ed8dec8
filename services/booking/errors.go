package booking

import (
	"errors"

	"mesafy/models"
)

// UnavailableError reports that a reservation attempt found no free table. It
// carries the full availability result so callers can relay the message and
// alternative slots. This is an expected outcome, distinct from
// infrastructure failure.
type UnavailableError struct {
	Result models.AvailabilityResult
}

func (e *UnavailableError) Error() string {
	if e.Result.Message != "" {
		return e.Result.Message
	}
	return "requested slot is unavailable"
}

// AsUnavailable extracts an UnavailableError from err, if present.
func AsUnavailable(err error) (*UnavailableError, bool) {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// ErrInvalidTransition reports a status change the reservation lifecycle does
// not permit.
var ErrInvalidTransition = errors.New("invalid reservation status transition")
