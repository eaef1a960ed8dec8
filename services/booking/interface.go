package booking

import (
	"context"

	reservationRepo "mesafy/database/repository/reservation"
	restaurantRepo "mesafy/database/repository/restaurant"
	serviceRepo "mesafy/database/repository/service"
	"mesafy/models"
	"mesafy/services/availability"
	"mesafy/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// BookingRequest carries the inputs of a reservation attempt.
type BookingRequest struct {
	RestaurantID  string `json:"restaurantId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	PartySize     int    `json:"partySize" binding:"required,min=1"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// BookingService drives the reservation lifecycle on top of the availability
// engine: check, transactional insert, status transitions, reschedules.
type BookingService interface {
	CreateReservation(ctx context.Context, req BookingRequest) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID, newStatus string) (*models.Reservation, error)
	Reschedule(ctx context.Context, reservationID, date, clock string) (*models.Reservation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine       *availability.Engine
	Reservations reservationRepo.ReservationRepository
	Restaurants  restaurantRepo.RestaurantRepository
	Services     serviceRepo.ServiceRepository
	Notifier     notification.NotificationService

	// TaskClient enqueues reservation reminders; nil disables reminders.
	TaskClient *asynq.Client
	// SessionCache holds short-lived availability sessions; nil disables them.
	SessionCache *redis.Client
}
