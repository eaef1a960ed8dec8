package models

// ReservationEvent is handed to the notification port after a reservation is
// persisted or changes status. Delivery channels are external to this system.
type ReservationEvent struct {
	Kind        string      `json:"kind"` // "created", "status_changed", "rescheduled"
	Reservation Reservation `json:"reservation"`
	PrevStatus  string      `json:"prevStatus,omitempty"`
}

// ReminderPayload is the asynq task payload for reservation reminders.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	RestaurantID  string `json:"restaurantId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}
