package availability

import (
	"context"
	"time"

	"mesafy/models"
)

// MatchServices selects the service windows applicable to a restaurant on a
// given date and time, ordered by creation time ascending. Callers treat the
// first element as the governing service (first-created-wins).
func (e *Engine) MatchServices(ctx context.Context, restaurantID, date, clock string) ([]models.Service, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return nil, err
	}

	services, err := e.Services.ListActive(ctx, restaurantID)
	if err != nil {
		return nil, newRepositoryError("list active services", err)
	}

	var matched []models.Service
	for _, svc := range services {
		if dateMatches(svc, day, date) && timeMatches(svc, minutes) {
			matched = append(matched, svc)
		}
	}
	return matched, nil
}

// dateMatches applies the date-range, day-type and season rules.
func dateMatches(svc models.Service, day time.Time, rawDate string) bool {
	if svc.DateRange != nil {
		// Inclusive on both ends; a malformed stored range never matches.
		start, err := time.Parse(dateLayout, svc.DateRange.Start)
		if err != nil {
			return false
		}
		end, err := time.Parse(dateLayout, svc.DateRange.End)
		if err != nil {
			return false
		}
		if day.Before(start) || day.After(end) {
			return false
		}
	}
	if !dayTypeMatches(svc.DayType, day.Weekday()) {
		return false
	}
	return seasonMatches(svc.Season, rawDate)
}

func dayTypeMatches(dayType string, weekday time.Weekday) bool {
	switch dayType {
	case models.DayTypeWeekday:
		return weekday >= time.Monday && weekday <= time.Friday
	case models.DayTypeWeekend:
		return weekday == time.Saturday || weekday == time.Sunday
	default:
		return true
	}
}

// seasonMatches is deliberately a no-op: only the "all" season is evaluated
// today and month-based season tags always pass. Preserved as documented
// behavior rather than inventing a seasonal calendar.
func seasonMatches(string, string) bool {
	return true
}

// timeMatches checks the requested time against [startTime, endTime).
func timeMatches(svc models.Service, minutes int) bool {
	start, err := ParseClock(svc.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(svc.EndTime)
	if err != nil {
		return false
	}
	return minutes >= start && minutes < end
}
