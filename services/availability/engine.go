package availability

import (
	"context"

	restaurantRepo "mesafy/database/repository/restaurant"
	reservationRepo "mesafy/database/repository/reservation"
	serviceRepo "mesafy/database/repository/service"
	"mesafy/models"
	"mesafy/utils"

	"go.uber.org/zap"
)

// Engine is the availability and table-assignment facade. It is stateless:
// every check reads through the injected repositories and mutates nothing, so
// calls are safe to repeat and to fan out from the alternative finder.
type Engine struct {
	Restaurants  restaurantRepo.RestaurantRepository
	Services     serviceRepo.ServiceRepository
	Reservations reservationRepo.ReservationRepository
}

// Negative-outcome messages; these are expected results, not errors.
const (
	msgNoService = "no service configured for this date/time"
	msgNoTable   = "no table for this party size"
	msgNoFree    = "no table free at this time"
)

// CheckAvailability decides whether a reservation can be honored and which
// tables to assign; when the requested slot is taken it probes nearby
// alternatives. Read-only.
func (e *Engine) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error) {
	return e.checkAvailability(ctx, req, true)
}

// checkAvailability carries the withAlternatives flag so alternative probes
// run with the finder disabled: alternatives never search for their own
// alternatives.
func (e *Engine) checkAvailability(ctx context.Context, req models.AvailabilityRequest, withAlternatives bool) (models.AvailabilityResult, error) {
	if req.PartySize < 1 {
		return models.AvailabilityResult{}, NewInvalidInputError("partySize", "must be at least 1")
	}

	services, err := e.MatchServices(ctx, req.RestaurantID, req.Date, req.Time)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	if len(services) == 0 {
		return models.AvailabilityResult{Available: false, Message: msgNoService}, nil
	}
	svc := services[0]

	tables, err := e.Restaurants.ListTables(ctx, req.RestaurantID)
	if err != nil {
		return models.AvailabilityResult{}, newRepositoryError("list tables", err)
	}
	candidates := filterByAllowList(tables, svc.AvailableTableIDs)

	var suitable []models.Table
	for _, t := range candidates {
		if t.Capacity >= req.PartySize {
			suitable = append(suitable, t)
		}
	}
	if len(suitable) == 0 {
		return models.AvailabilityResult{Available: false, Service: &svc, Message: msgNoTable}, nil
	}

	window, err := NewTimeWindow(req.Time, svc.DefaultDurationMinutes)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	conflicts, err := e.FindConflicts(ctx, req.RestaurantID, req.Date, window, svc.DefaultDurationMinutes, req.ExcludeReservationID)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	occupied := occupiedTableIDs(conflicts)

	var free []models.Table
	for _, t := range suitable {
		if !occupied[t.ID] {
			free = append(free, t)
		}
	}
	if len(free) == 0 {
		result := models.AvailabilityResult{Available: false, Service: &svc, Message: msgNoFree}
		if withAlternatives {
			result.AlternativeSlots = e.findAlternatives(ctx, svc, req)
		}
		return result, nil
	}

	suggested := AllocateTables(free, req.PartySize)
	if len(suggested) == 0 {
		// Free tables exist but no combination seats the party.
		result := models.AvailabilityResult{Available: false, Service: &svc, Message: msgNoFree}
		if withAlternatives {
			result.AlternativeSlots = e.findAlternatives(ctx, svc, req)
		}
		return result, nil
	}

	utils.GetLogger().Debug("availability granted",
		zap.String("restaurantID", req.RestaurantID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Int("partySize", req.PartySize),
		zap.Strings("tables", suggested))

	return models.AvailabilityResult{
		Available:       true,
		Service:         &svc,
		SuggestedTables: suggested,
	}, nil
}

// filterByAllowList keeps the tables named in the service's allow-list;
// an absent list means every table is eligible.
func filterByAllowList(tables []models.Table, allowed []string) []models.Table {
	if len(allowed) == 0 {
		return tables
	}
	allowSet := make(map[string]bool, len(allowed))
	for _, id := range allowed {
		allowSet[id] = true
	}
	var filtered []models.Table
	for _, t := range tables {
		if allowSet[t.ID] {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
