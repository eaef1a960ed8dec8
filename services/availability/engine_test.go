package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	restaurantRepo "mesafy/database/repository/restaurant"
	reservationRepo "mesafy/database/repository/reservation"
	serviceRepo "mesafy/database/repository/service"
	"mesafy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes embed the repository interface so any method a test does not stub
// panics instead of silently returning zero values.

type fakeRestaurants struct {
	restaurantRepo.RestaurantRepository
	tables []models.Table
	err    error
}

func (f *fakeRestaurants) ListTables(_ context.Context, _ string) ([]models.Table, error) {
	return f.tables, f.err
}

type fakeServices struct {
	serviceRepo.ServiceRepository
	services []models.Service
	err      error
}

func (f *fakeServices) ListActive(_ context.Context, _ string) ([]models.Service, error) {
	return f.services, f.err
}

type fakeReservations struct {
	reservationRepo.ReservationRepository
	reservations []models.Reservation
	err          error
}

func (f *fakeReservations) ListOccupying(_ context.Context, _, _ string) ([]models.Reservation, error) {
	return f.reservations, f.err
}

func dinnerService() models.Service {
	return models.Service{
		ID:                     "svc-dinner",
		RestaurantID:           "r1",
		ServiceType:            models.ServiceTypeDinner,
		Season:                 "all",
		DayType:                models.DayTypeAll,
		StartTime:              "20:00",
		EndTime:                "23:00",
		DefaultDurationMinutes: 60,
		BufferMinutes:          30,
		SlotGenerationMode:     models.SlotModeAuto,
		IsActive:               true,
		CreatedAt:              time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestEngine(svc models.Service, tables []models.Table, reservations []models.Reservation) *Engine {
	return &Engine{
		Restaurants:  &fakeRestaurants{tables: tables},
		Services:     &fakeServices{services: []models.Service{svc}},
		Reservations: &fakeReservations{reservations: reservations},
	}
}

func dinnerRequest(clock string, partySize int) models.AvailabilityRequest {
	return models.AvailabilityRequest{
		RestaurantID: "r1",
		Date:         "2026-07-06", // a Monday
		Time:         clock,
		PartySize:    partySize,
	}
}

func TestCheckAvailabilityGrantsFreeTable(t *testing.T) {
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 2}, {ID: "t2", Capacity: 4}}, nil)

	result, err := engine.CheckAvailability(context.Background(), dinnerRequest("20:00", 4))
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, []string{"t2"}, result.SuggestedTables)
	require.NotNil(t, result.Service)
	assert.Equal(t, "svc-dinner", result.Service.ID)
	assert.Empty(t, result.AlternativeSlots)
}

func TestCheckAvailabilityIsIdempotent(t *testing.T) {
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 4}}, nil)
	req := dinnerRequest("21:30", 2)

	first, err := engine.CheckAvailability(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.CheckAvailability(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckAvailabilityNoService(t *testing.T) {
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 4}}, nil)

	// 14:00 falls outside the dinner window.
	result, err := engine.CheckAvailability(context.Background(), dinnerRequest("14:00", 2))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "no service configured for this date/time", result.Message)
	assert.Nil(t, result.Service)
}

func TestCheckAvailabilityNoTableForPartySize(t *testing.T) {
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 2}, {ID: "t2", Capacity: 4}}, nil)

	result, err := engine.CheckAvailability(context.Background(), dinnerRequest("20:00", 6))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "no table for this party size", result.Message)
}

func TestCheckAvailabilityConflictSuggestsAlternatives(t *testing.T) {
	occupying := models.Reservation{
		ID:                       "res-1",
		RestaurantID:             "r1",
		TableIDs:                 []string{"t1"},
		Date:                     "2026-07-06",
		Time:                     "20:00",
		EstimatedDurationMinutes: 60,
		Status:                   models.ReservationStatusConfirmed,
	}
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 4}},
		[]models.Reservation{occupying})

	result, err := engine.CheckAvailability(context.Background(), dinnerRequest("20:00", 2))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "no table free at this time", result.Message)

	// The service's other slot, 21:30, sits within the probe range and is
	// conflict-free. The requested time itself must never be suggested.
	require.Len(t, result.AlternativeSlots, 1)
	assert.Equal(t, "21:30", result.AlternativeSlots[0].Time)
	assert.True(t, result.AlternativeSlots[0].Available)
}

func TestCheckAvailabilityAlternativesBounded(t *testing.T) {
	svc := dinnerService()
	svc.StartTime = "19:00"
	svc.SlotGenerationMode = models.SlotModeManual
	// Quarter-hour slots across the whole window: 17 candidates, 16 of which
	// differ from the requested time and all sit within two hours of it.
	for m := 19 * 60; m <= 23*60; m += 15 {
		svc.ManualSlots = append(svc.ManualSlots, FormatClock(m))
	}

	occupying := models.Reservation{
		ID:                       "res-1",
		RestaurantID:             "r1",
		TableIDs:                 []string{"t1"},
		Date:                     "2026-07-06",
		Time:                     "21:00",
		EstimatedDurationMinutes: 60,
		Status:                   models.ReservationStatusPending,
	}
	engine := newTestEngine(svc,
		[]models.Table{{ID: "t1", Capacity: 4}},
		[]models.Reservation{occupying})

	result, err := engine.CheckAvailability(context.Background(), dinnerRequest("21:00", 2))
	require.NoError(t, err)
	assert.False(t, result.Available)
	require.Len(t, result.AlternativeSlots, 10)

	for _, alt := range result.AlternativeSlots {
		assert.NotEqual(t, "21:00", alt.Time)
	}
	// Nearest first; at equal distance the earlier slot wins.
	assert.Equal(t, "20:45", result.AlternativeSlots[0].Time)
	assert.Equal(t, "21:15", result.AlternativeSlots[1].Time)
	// 20:45 seats 20:45-21:45, overlapping the occupying reservation.
	assert.False(t, result.AlternativeSlots[0].Available)
	// 20:00 seats 20:00-21:00; touching the occupied interval is not a conflict.
	for _, alt := range result.AlternativeSlots {
		if alt.Time == "20:00" {
			assert.True(t, alt.Available)
		}
	}
}

func TestCheckAvailabilityExcludeReservation(t *testing.T) {
	occupying := models.Reservation{
		ID:                       "res-1",
		RestaurantID:             "r1",
		TableIDs:                 []string{"t1"},
		Date:                     "2026-07-06",
		Time:                     "20:00",
		EstimatedDurationMinutes: 60,
		Status:                   models.ReservationStatusConfirmed,
	}
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 4}},
		[]models.Reservation{occupying})

	req := dinnerRequest("20:00", 2)
	result, err := engine.CheckAvailability(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.Available)

	// Editing the reservation itself: its own hold must not block the slot.
	req.ExcludeReservationID = "res-1"
	result, err = engine.CheckAvailability(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, []string{"t1"}, result.SuggestedTables)
}

func TestCheckAvailabilityServiceAllowList(t *testing.T) {
	svc := dinnerService()
	svc.AvailableTableIDs = []string{"t2"}
	engine := newTestEngine(svc,
		[]models.Table{{ID: "t1", Capacity: 8}, {ID: "t2", Capacity: 2}}, nil)

	// t1 would seat the party but is outside the service's allow-list.
	result, err := engine.CheckAvailability(context.Background(), dinnerRequest("20:00", 6))
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "no table for this party size", result.Message)

	result, err = engine.CheckAvailability(context.Background(), dinnerRequest("20:00", 2))
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, []string{"t2"}, result.SuggestedTables)
}

func TestCheckAvailabilityInvalidInput(t *testing.T) {
	engine := newTestEngine(dinnerService(),
		[]models.Table{{ID: "t1", Capacity: 4}}, nil)

	_, err := engine.CheckAvailability(context.Background(), models.AvailabilityRequest{
		RestaurantID: "r1", Date: "2026-07-06", Time: "20:00", PartySize: 0,
	})
	assert.True(t, IsInvalidInput(err))

	_, err = engine.CheckAvailability(context.Background(), models.AvailabilityRequest{
		RestaurantID: "r1", Date: "06/07/2026", Time: "20:00", PartySize: 2,
	})
	assert.True(t, IsInvalidInput(err))

	_, err = engine.CheckAvailability(context.Background(), models.AvailabilityRequest{
		RestaurantID: "r1", Date: "2026-07-06", Time: "8pm", PartySize: 2,
	})
	assert.True(t, IsInvalidInput(err))
}

func TestCheckAvailabilityRepositoryFailure(t *testing.T) {
	engine := newTestEngine(dinnerService(), nil, nil)
	engine.Reservations = &fakeReservations{err: errors.New("connection reset")}
	engine.Restaurants = &fakeRestaurants{tables: []models.Table{{ID: "t1", Capacity: 4}}}

	_, err := engine.CheckAvailability(context.Background(), dinnerRequest("20:00", 2))
	require.Error(t, err)
	assert.True(t, IsRepositoryError(err))
	assert.False(t, IsInvalidInput(err))
}
