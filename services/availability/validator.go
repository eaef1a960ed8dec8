package availability

import (
	"fmt"

	"mesafy/models"
)

// Fixed service-type windows: lunch services must sit within 13:00-16:00 and
// dinner services within 20:00-23:00.
const (
	lunchWindowStart  = 13 * 60
	lunchWindowEnd    = 16 * 60
	dinnerWindowStart = 20 * 60
	dinnerWindowEnd   = 23 * 60
)

// ValidateServiceConfig checks a service window definition for internal
// consistency before it is persisted. It collects every violated rule instead
// of stopping at the first, and has no side effects.
func ValidateServiceConfig(svc models.Service) models.ServiceValidationResult {
	var errs []string

	switch svc.ServiceType {
	case models.ServiceTypeLunch, models.ServiceTypeDinner:
	default:
		errs = append(errs, fmt.Sprintf("serviceType must be %q or %q", models.ServiceTypeLunch, models.ServiceTypeDinner))
	}

	start, startErr := ParseClock(svc.StartTime)
	if startErr != nil {
		errs = append(errs, fmt.Sprintf("startTime %q is not a valid HH:MM time", svc.StartTime))
	}
	end, endErr := ParseClock(svc.EndTime)
	if endErr != nil {
		errs = append(errs, fmt.Sprintf("endTime %q is not a valid HH:MM time", svc.EndTime))
	}

	if startErr == nil && endErr == nil {
		if start >= end {
			errs = append(errs, "startTime must be before endTime")
		}
		switch svc.ServiceType {
		case models.ServiceTypeLunch:
			if start < lunchWindowStart || end > lunchWindowEnd {
				errs = append(errs, "lunch services must fall within 13:00-16:00")
			}
		case models.ServiceTypeDinner:
			if start < dinnerWindowStart || end > dinnerWindowEnd {
				errs = append(errs, "dinner services must fall within 20:00-23:00")
			}
		}
	}

	if svc.DefaultDurationMinutes < models.MinDurationMinutes || svc.DefaultDurationMinutes > models.MaxDurationMinutes {
		errs = append(errs, fmt.Sprintf("defaultDurationMinutes must be between %d and %d", models.MinDurationMinutes, models.MaxDurationMinutes))
	}
	if svc.BufferMinutes < models.MinBufferMinutes || svc.BufferMinutes > models.MaxBufferMinutes {
		errs = append(errs, fmt.Sprintf("bufferMinutes must be between %d and %d", models.MinBufferMinutes, models.MaxBufferMinutes))
	}

	switch svc.SlotGenerationMode {
	case models.SlotModeAuto:
	case models.SlotModeManual:
		if len(svc.ManualSlots) == 0 {
			errs = append(errs, "manualSlots must not be empty when slotGenerationMode is manual")
		}
	default:
		errs = append(errs, fmt.Sprintf("slotGenerationMode must be %q or %q", models.SlotModeAuto, models.SlotModeManual))
	}

	return models.ServiceValidationResult{Valid: len(errs) == 0, Errors: errs}
}
