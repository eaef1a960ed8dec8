package availability

import (
	"context"
	"testing"
	"time"

	"mesafy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherEngine(services ...models.Service) *Engine {
	return &Engine{Services: &fakeServices{services: services}}
}

func TestMatchServicesDayType(t *testing.T) {
	lunch := dinnerService()
	lunch.ID = "svc-weekday"
	lunch.DayType = models.DayTypeWeekday

	engine := matcherEngine(lunch)

	// 2026-07-06 is a Monday, 2026-07-04 a Saturday.
	matched, err := engine.MatchServices(context.Background(), "r1", "2026-07-06", "20:30")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "svc-weekday", matched[0].ID)

	matched, err = engine.MatchServices(context.Background(), "r1", "2026-07-04", "20:30")
	require.NoError(t, err)
	assert.Empty(t, matched)

	lunch.DayType = models.DayTypeWeekend
	matched, err = matcherEngine(lunch).MatchServices(context.Background(), "r1", "2026-07-04", "20:30")
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestMatchServicesTimeWindowHalfOpen(t *testing.T) {
	engine := matcherEngine(dinnerService())

	for clock, want := range map[string]int{
		"19:59": 0, // before opening
		"20:00": 1, // start is inclusive
		"22:59": 1,
		"23:00": 0, // end is exclusive
	} {
		matched, err := engine.MatchServices(context.Background(), "r1", "2026-07-06", clock)
		require.NoError(t, err)
		assert.Len(t, matched, want, "clock %s", clock)
	}
}

func TestMatchServicesDateRange(t *testing.T) {
	svc := dinnerService()
	svc.DateRange = &models.DateRange{Start: "2026-07-01", End: "2026-07-31"}
	engine := matcherEngine(svc)

	for date, want := range map[string]int{
		"2026-06-30": 0,
		"2026-07-01": 1, // inclusive start
		"2026-07-31": 1, // inclusive end
		"2026-08-01": 0,
	} {
		matched, err := engine.MatchServices(context.Background(), "r1", date, "20:30")
		require.NoError(t, err)
		assert.Len(t, matched, want, "date %s", date)
	}
}

func TestMatchServicesMalformedStoredRange(t *testing.T) {
	svc := dinnerService()
	svc.DateRange = &models.DateRange{Start: "July 1st", End: "2026-07-31"}

	matched, err := matcherEngine(svc).MatchServices(context.Background(), "r1", "2026-07-06", "20:30")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMatchServicesFirstCreatedWins(t *testing.T) {
	older := dinnerService()
	older.ID = "svc-older"
	newer := dinnerService()
	newer.ID = "svc-newer"
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	// The repository returns createdAt ascending; the matcher must preserve
	// that order so callers can take the first element.
	matched, err := matcherEngine(older, newer).MatchServices(context.Background(), "r1", "2026-07-06", "20:30")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "svc-older", matched[0].ID)
	assert.Equal(t, "svc-newer", matched[1].ID)
}

func TestMatchServicesInvalidInput(t *testing.T) {
	engine := matcherEngine(dinnerService())

	_, err := engine.MatchServices(context.Background(), "r1", "not-a-date", "20:30")
	assert.True(t, IsInvalidInput(err))

	_, err = engine.MatchServices(context.Background(), "r1", "2026-07-06", "25:99")
	assert.True(t, IsInvalidInput(err))
}
