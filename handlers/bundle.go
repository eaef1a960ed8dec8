package handlers

import (
	"errors"
	"net/http"

	reservationRepo "mesafy/database/repository/reservation"
	restaurantRepo "mesafy/database/repository/restaurant"
	serviceRepo "mesafy/database/repository/service"
	"mesafy/services/availability"
	"mesafy/services/booking"
	"mesafy/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the services the HTTP surface depends on.
type HandlerBundle struct {
	Engine       *availability.Engine
	BookingSvc   *booking.DefaultBookingService
	Restaurants  restaurantRepo.RestaurantRepository
	Services     serviceRepo.ServiceRepository
	Reservations reservationRepo.ReservationRepository
}

// NewHandlerBundle wires a HandlerBundle.
func NewHandlerBundle(
	engine *availability.Engine,
	bookingSvc *booking.DefaultBookingService,
	restaurants restaurantRepo.RestaurantRepository,
	services serviceRepo.ServiceRepository,
	reservations reservationRepo.ReservationRepository,
) *HandlerBundle {
	return &HandlerBundle{
		Engine:       engine,
		BookingSvc:   bookingSvc,
		Restaurants:  restaurants,
		Services:     services,
		Reservations: reservations,
	}
}

func errorsIsInvalidTransition(err error) bool {
	return errors.Is(err, booking.ErrInvalidTransition)
}

// respondEngineError maps engine errors onto HTTP statuses: malformed input
// is the caller's fault, repository trouble must not masquerade as "fully
// booked".
func respondEngineError(c *gin.Context, err error) {
	switch {
	case availability.IsInvalidInput(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case availability.IsRepositoryError(err):
		utils.JSONError(c, http.StatusServiceUnavailable, "temporary backend failure, please retry", err.Error())
	case errors.Is(err, reservationRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
