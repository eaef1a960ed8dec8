package availability

import (
	"fmt"
	"time"

	"mesafy/models"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"

	minutesPerDay = 24 * 60
)

// ParseClock converts an "HH:MM" string into minutes from midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, NewInvalidInputError("time", fmt.Sprintf("%q is not an HH:MM time", value))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM", wrapping past
// midnight.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate converts a "2006-01-02" string to a calendar day.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, NewInvalidInputError("date", fmt.Sprintf("%q is not a YYYY-MM-DD date", value))
	}
	return d, nil
}

// NewTimeWindow builds the half-open occupied interval for a reservation
// starting at the given clock time.
func NewTimeWindow(start string, durationMinutes int) (models.TimeWindow, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return models.TimeWindow{}, err
	}
	if durationMinutes <= 0 {
		return models.TimeWindow{}, NewInvalidInputError("duration", "must be positive")
	}
	return models.TimeWindow{Start: startMin, End: startMin + durationMinutes}, nil
}

// CalculateReleaseTime returns the clock time at which a reservation starting
// at reservationTime releases its tables.
func CalculateReleaseTime(reservationTime string, durationMinutes int) (string, error) {
	startMin, err := ParseClock(reservationTime)
	if err != nil {
		return "", err
	}
	return FormatClock(startMin + durationMinutes), nil
}
