package notification

import (
	"context"

	"mesafy/models"
	"mesafy/utils"

	"go.uber.org/zap"
)

// NotificationService is the port invoked after a reservation is persisted or
// changes status. Actual delivery channels (WhatsApp, IVR, email) live
// outside this system; implementations here only hand the event off.
type NotificationService interface {
	ReservationEvent(ctx context.Context, event models.ReservationEvent) error
}

// LogNotificationService records reservation events in the structured log.
// It stands in for the external messaging gateway in development and tests.
type LogNotificationService struct{}

func (s *LogNotificationService) ReservationEvent(_ context.Context, event models.ReservationEvent) error {
	utils.GetLogger().Info("reservation event",
		zap.String("kind", event.Kind),
		zap.String("reservationID", event.Reservation.ID),
		zap.String("restaurantID", event.Reservation.RestaurantID),
		zap.String("date", event.Reservation.Date),
		zap.String("time", event.Reservation.Time),
		zap.String("status", event.Reservation.Status),
		zap.String("prevStatus", event.PrevStatus),
	)
	return nil
}
