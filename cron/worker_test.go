package cron

import (
	"context"
	"testing"
	"time"

	reservationRepo "mesafy/database/repository/reservation"
	"mesafy/models"
	"mesafy/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweepReservations struct {
	reservationRepo.ReservationRepository
	pending []models.Reservation
}

func (s *sweepReservations) ListPendingThrough(_ context.Context, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range s.pending {
		if r.Date <= date {
			out = append(out, r)
		}
	}
	return out, nil
}

type sweepBooking struct {
	booking.BookingService
	marked []string
}

func (s *sweepBooking) UpdateStatus(_ context.Context, reservationID, status string) (*models.Reservation, error) {
	if status == models.ReservationStatusNoShow {
		s.marked = append(s.marked, reservationID)
	}
	return &models.Reservation{ID: reservationID, Status: status}, nil
}

func TestNoShowDue(t *testing.T) {
	today := "2026-07-06"
	cases := []struct {
		name       string
		res        models.Reservation
		nowMinutes int
		due        bool
	}{
		{"yesterday past midnight", models.Reservation{Date: "2026-07-05", EndMinutes: 23*60 + 59}, 8 * 60, true},
		{"last week", models.Reservation{Date: "2026-06-29", EndMinutes: 21 * 60}, 0, true},
		{"today, interval ended", models.Reservation{Date: today, EndMinutes: 14 * 60}, 14 * 60, true},
		{"today, still seated", models.Reservation{Date: today, EndMinutes: 14 * 60}, 14*60 - 1, false},
		{"future date", models.Reservation{Date: "2026-07-07", EndMinutes: 14 * 60}, 23 * 60, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.due, noShowDue(c.res, today, c.nowMinutes), c.name)
	}
}

func TestNoShowSweepMarksStalePending(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	store := &sweepReservations{pending: []models.Reservation{
		// Left PENDING on a prior date; overdue whatever the clock says.
		{ID: "res-stale", Date: yesterday, EndMinutes: 23*60 + 59, Status: models.ReservationStatusPending},
		{ID: "res-upcoming", Date: tomorrow, EndMinutes: 21 * 60, Status: models.ReservationStatusPending},
	}}
	bookingSvc := &sweepBooking{}

	handler := handleNoShowSweep(bookingSvc, store)
	require.NoError(t, handler(context.Background(), nil))

	assert.Equal(t, []string{"res-stale"}, bookingSvc.marked)
}
