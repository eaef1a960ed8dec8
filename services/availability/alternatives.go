package availability

import (
	"context"
	"sort"

	"mesafy/models"
	"mesafy/utils"

	"go.uber.org/zap"
)

const (
	// maxAlternativeOffset bounds how far from the requested time a
	// candidate slot may sit, in minutes either way.
	maxAlternativeOffset = 120
	// maxAlternatives bounds the fan-out of full availability re-checks.
	maxAlternatives = 10
)

// findAlternatives probes the service's nearby slots when the requested time
// is unavailable. Best-effort: each candidate is a full availability check
// with the finder disabled, so the fan-out is at most maxAlternatives checks
// one level deep.
func (e *Engine) findAlternatives(ctx context.Context, svc models.Service, req models.AvailabilityRequest) []models.AlternativeSlot {
	requested, err := ParseClock(req.Time)
	if err != nil {
		return nil
	}

	type candidate struct {
		slot   string
		offset int // signed minutes from the requested time
	}
	var candidates []candidate
	for _, slot := range ServiceSlots(svc) {
		minutes, err := ParseClock(slot)
		if err != nil {
			continue
		}
		offset := minutes - requested
		if offset == 0 {
			continue
		}
		if offset < -maxAlternativeOffset || offset > maxAlternativeOffset {
			continue
		}
		candidates = append(candidates, candidate{slot: slot, offset: offset})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ai, aj := abs(candidates[i].offset), abs(candidates[j].offset)
		if ai != aj {
			return ai < aj
		}
		return candidates[i].offset < candidates[j].offset
	})
	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}

	logger := utils.GetLogger()
	var alternatives []models.AlternativeSlot
	for _, c := range candidates {
		probe := models.AvailabilityRequest{
			RestaurantID: req.RestaurantID,
			Date:         req.Date,
			Time:         c.slot,
			PartySize:    req.PartySize,
		}
		result, err := e.checkAvailability(ctx, probe, false)
		if err != nil {
			logger.Warn("alternative slot probe failed",
				zap.String("slot", c.slot), zap.Error(err))
			continue
		}
		alternatives = append(alternatives, models.AlternativeSlot{
			Time:      c.slot,
			Available: result.Available,
		})
	}
	return alternatives
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
