package availability

import (
	"context"

	"mesafy/models"
)

// FindConflicts returns the occupying reservations of a restaurant whose
// occupied interval overlaps the requested window. A reservation's duration
// is the one stored on it at creation time; fallbackDuration covers legacy
// records that stored none. excludeID skips one reservation, for reschedule
// flows.
func (e *Engine) FindConflicts(ctx context.Context, restaurantID, date string, window models.TimeWindow, fallbackDuration int, excludeID string) ([]models.Reservation, error) {
	reservations, err := e.Reservations.ListOccupying(ctx, restaurantID, date)
	if err != nil {
		return nil, newRepositoryError("list occupying reservations", err)
	}

	var conflicts []models.Reservation
	for _, res := range reservations {
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		start, err := ParseClock(res.Time)
		if err != nil {
			// A reservation with an unparsable stored time cannot be placed
			// on the timeline; skip it rather than block the whole check.
			continue
		}
		duration := res.EstimatedDurationMinutes
		if duration <= 0 {
			duration = fallbackDuration
		}
		occupied := models.TimeWindow{Start: start, End: start + duration}
		if occupied.Overlaps(window) {
			conflicts = append(conflicts, res)
		}
	}
	return conflicts, nil
}

// occupiedTableIDs flattens the table ids held by a set of conflicting
// reservations.
func occupiedTableIDs(conflicts []models.Reservation) map[string]bool {
	occupied := make(map[string]bool)
	for _, res := range conflicts {
		for _, id := range res.TableIDs {
			occupied[id] = true
		}
	}
	return occupied
}
