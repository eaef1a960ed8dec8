package models

import "time"

// Service types.
const (
	ServiceTypeLunch  = "lunch"
	ServiceTypeDinner = "dinner"
)

// Day types restricting which calendar days a service window applies to.
const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
	DayTypeAll     = "all"
)

// Slot generation modes.
const (
	SlotModeAuto   = "auto"
	SlotModeManual = "manual"
)

// Bounds enforced on service window configuration.
const (
	MinDurationMinutes = 60
	MaxDurationMinutes = 180
	MinBufferMinutes   = 10
	MaxBufferMinutes   = 30
)

// DateRange is an inclusive calendar range ("2006-01-02" strings) restricting
// when a service window applies.
type DateRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Service represents a service window: a lunch or dinner configuration
// defining when bookings are accepted and at what default duration/buffer.
type Service struct {
	ID           string `bson:"id" json:"id"`
	RestaurantID string `bson:"restaurantId" json:"restaurantId"`
	ServiceType  string `bson:"serviceType" json:"serviceType"` // "lunch" or "dinner"
	Season       string `bson:"season" json:"season"`           // only "all" is evaluated today
	DayType      string `bson:"dayType" json:"dayType"`         // "weekday", "weekend" or "all"

	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM", exclusive

	DefaultDurationMinutes int `bson:"defaultDurationMinutes" json:"defaultDurationMinutes"`
	BufferMinutes          int `bson:"bufferMinutes" json:"bufferMinutes"`

	SlotGenerationMode string   `bson:"slotGenerationMode" json:"slotGenerationMode"`
	ManualSlots        []string `bson:"manualSlots,omitempty" json:"manualSlots,omitempty"` // required when mode is manual

	// AvailableTableIDs restricts which tables this service may seat; empty
	// means every table of the restaurant is eligible.
	AvailableTableIDs []string `bson:"availableTableIds,omitempty" json:"availableTableIds,omitempty"`

	DateRange *DateRange `bson:"dateRange,omitempty" json:"dateRange,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"` // matching tie-break: first created wins
}

// ServiceValidationResult reports every configuration rule a service window
// definition violates, not just the first.
type ServiceValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
