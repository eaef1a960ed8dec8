package handlers

import (
	"net/http"
	"strconv"

	"mesafy/models"
	"mesafy/services/availability"
	"mesafy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckAvailabilityHandler runs a full availability check. Positive results
// are cached as a short-lived session so the confirm step can reference them.
func (hb *HandlerBundle) CheckAvailabilityHandler(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := hb.Engine.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	response := gin.H{"result": result}
	if result.Available && hb.BookingSvc != nil {
		sessionID, err := hb.BookingSvc.SaveAvailabilitySession(c.Request.Context(), req, result)
		if err != nil {
			// The check itself succeeded; degrade to a sessionless response.
			utils.GetLogger().Warn("failed to save availability session", zap.Error(err))
		} else if sessionID != "" {
			response["sessionId"] = sessionID
		}
	}
	c.JSON(http.StatusOK, response)
}

// MatchServicesHandler returns the service windows applicable to a
// restaurant at a date/time, creation order, first entry governing.
func (hb *HandlerBundle) MatchServicesHandler(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	date := c.Query("date")
	clock := c.Query("time")
	if restaurantID == "" || date == "" || clock == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "restaurantId, date and time are required")
		return
	}

	services, err := hb.Engine.MatchServices(c.Request.Context(), restaurantID, date, clock)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GenerateSlotsHandler returns the bookable start times of a service window.
func (hb *HandlerBundle) GenerateSlotsHandler(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "serviceId is required")
		return
	}

	svc, err := hb.Services.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": availability.ServiceSlots(*svc)})
}

// ReleaseTimeHandler computes when a reservation starting at the given time
// releases its tables.
func (hb *HandlerBundle) ReleaseTimeHandler(c *gin.Context) {
	clock := c.Query("time")
	duration, err := strconv.Atoi(c.Query("durationMinutes"))
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "durationMinutes must be a positive integer")
		return
	}

	release, err := availability.CalculateReleaseTime(clock, duration)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"releaseTime": release})
}
