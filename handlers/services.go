package handlers

import (
	"net/http"
	"time"

	"mesafy/models"
	"mesafy/services/availability"
	"mesafy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValidateServiceHandler runs the configuration validator without persisting
// anything, so admin tooling can pre-check a service window before save.
func (hb *HandlerBundle) ValidateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, availability.ValidateServiceConfig(svc))
}

// CreateServiceHandler validates and persists a new service window.
func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if svc.RestaurantID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "restaurantId is required")
		return
	}

	validation := availability.ValidateServiceConfig(svc)
	if !validation.Valid {
		c.JSON(http.StatusUnprocessableEntity, validation)
		return
	}

	svc.ID = uuid.New().String()
	svc.IsActive = true
	svc.CreatedAt = time.Now()
	if err := hb.Services.Create(c.Request.Context(), &svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListServicesHandler returns a restaurant's service windows, creation order.
func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "restaurantId is required")
		return
	}
	services, err := hb.Services.List(c.Request.Context(), restaurantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// SetServiceActiveHandler flips a service window's active flag.
func (hb *HandlerBundle) SetServiceActiveHandler(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := hb.Services.SetActive(c.Request.Context(), c.Param("id"), *input.Active); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
