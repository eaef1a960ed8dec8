package availability

import "mesafy/models"

// GenerateAutoSlots expands a service window into its canonical start times.
// Starting at the window's start time, each slot advances the cursor by
// duration plus buffer; a slot is emitted whenever its start falls within
// [startTime, endTime), so the last seating may run past the window's close.
// It never consults reservation data.
func GenerateAutoSlots(svc models.Service) []string {
	start, err := ParseClock(svc.StartTime)
	if err != nil {
		return nil
	}
	end, err := ParseClock(svc.EndTime)
	if err != nil {
		return nil
	}
	step := svc.DefaultDurationMinutes + svc.BufferMinutes
	if svc.DefaultDurationMinutes <= 0 || step <= 0 {
		return nil
	}

	var slots []string
	for cursor := start; cursor < end; cursor += step {
		slots = append(slots, FormatClock(cursor))
	}
	return slots
}

// ServiceSlots returns the bookable start times for a service: the admin's
// manual list verbatim when the service is in manual mode, otherwise the
// generated arithmetic progression.
func ServiceSlots(svc models.Service) []string {
	if svc.SlotGenerationMode == models.SlotModeManual {
		return svc.ManualSlots
	}
	return GenerateAutoSlots(svc)
}
