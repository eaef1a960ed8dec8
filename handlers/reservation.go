package handlers

import (
	"net/http"

	"mesafy/services/booking"
	"mesafy/utils"

	"github.com/gin-gonic/gin"
)

// CreateReservationHandler books a table. The body may carry either the full
// request or a sessionId from a previous availability check; booking always
// re-checks before inserting.
func (hb *HandlerBundle) CreateReservationHandler(c *gin.Context) {
	var input struct {
		SessionID     string `json:"sessionId,omitempty"`
		RestaurantID  string `json:"restaurantId,omitempty"`
		Date          string `json:"date,omitempty"`
		Time          string `json:"time,omitempty"`
		PartySize     int    `json:"partySize,omitempty"`
		CustomerName  string `json:"customerName,omitempty"`
		CustomerPhone string `json:"customerPhone,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req := booking.BookingRequest{
		RestaurantID:  input.RestaurantID,
		Date:          input.Date,
		Time:          input.Time,
		PartySize:     input.PartySize,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
	}
	if input.SessionID != "" && req.RestaurantID == "" {
		session, err := hb.BookingSvc.GetAvailabilitySession(c.Request.Context(), input.SessionID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "availability session not found or expired", err.Error())
			return
		}
		req.RestaurantID = session.Request.RestaurantID
		req.Date = session.Request.Date
		req.Time = session.Request.Time
		req.PartySize = session.Request.PartySize
	}
	if req.RestaurantID == "" || req.Date == "" || req.Time == "" || req.PartySize < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "restaurantId, date, time and partySize are required")
		return
	}

	res, err := hb.BookingSvc.CreateReservation(c.Request.Context(), req)
	if err != nil {
		if ue, ok := booking.AsUnavailable(err); ok {
			// Expected outcome: relay the negative result with alternatives.
			c.JSON(http.StatusConflict, gin.H{"result": ue.Result})
			return
		}
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetReservationHandler returns a reservation by id.
func (hb *HandlerBundle) GetReservationHandler(c *gin.Context) {
	res, err := hb.Reservations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateReservationStatusHandler applies a lifecycle transition.
func (hb *HandlerBundle) UpdateReservationStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := hb.BookingSvc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		if errorsIsInvalidTransition(err) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid status transition", err.Error())
			return
		}
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RescheduleReservationHandler moves a reservation to a new date/time.
func (hb *HandlerBundle) RescheduleReservationHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	res, err := hb.BookingSvc.Reschedule(c.Request.Context(), c.Param("id"), input.Date, input.Time)
	if err != nil {
		if ue, ok := booking.AsUnavailable(err); ok {
			c.JSON(http.StatusConflict, gin.H{"result": ue.Result})
			return
		}
		if errorsIsInvalidTransition(err) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid status transition", err.Error())
			return
		}
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
