package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusNoShow, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusNoShow, true},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusNoShow, ReservationStatusCancelled, false},
		{ReservationStatusPending, ReservationStatusPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, ValidStatusTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestOccupies(t *testing.T) {
	for status, want := range map[string]bool{
		ReservationStatusPending:   true,
		ReservationStatusConfirmed: true,
		ReservationStatusCancelled: false,
		ReservationStatusNoShow:    false,
	} {
		r := Reservation{Status: status}
		assert.Equal(t, want, r.Occupies(), "status %s", status)
	}
}
