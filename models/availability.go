package models

// TimeWindow is a half-open interval [Start, End) in minutes from midnight,
// used uniformly for overlap math.
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start < other.End && other.Start < w.End
}

// AvailabilityRequest carries the inputs of an availability check.
type AvailabilityRequest struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	Date         string `json:"date" binding:"required"` // "2006-01-02"
	Time         string `json:"time" binding:"required"` // "HH:MM"
	PartySize    int    `json:"partySize" binding:"required,min=1"`

	// ExcludeReservationID ignores one reservation during conflict detection,
	// used by edit/reschedule flows.
	ExcludeReservationID string `json:"excludeReservationId,omitempty"`
}

// AlternativeSlot is a nearby candidate start time probed when the requested
// slot is unavailable.
type AlternativeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailabilityResult is the outcome of an availability check. A negative
// outcome is an expected result, not an error.
type AvailabilityResult struct {
	Available        bool              `json:"available"`
	SuggestedTables  []string          `json:"suggestedTables,omitempty"` // table ids
	Service          *Service          `json:"service,omitempty"`
	Message          string            `json:"message,omitempty"`
	AlternativeSlots []AlternativeSlot `json:"alternativeSlots,omitempty"`
}

// AvailabilitySession is a short-lived snapshot of a positive availability
// check, cached so the confirm step can reference the exact suggestion the
// guest saw. Booking always re-checks; the session is advisory.
type AvailabilitySession struct {
	SessionID string              `json:"sessionId"`
	Request   AvailabilityRequest `json:"request"`
	Result    AvailabilityResult  `json:"result"`
}
