package handlers

import (
	"net/http"

	"mesafy/models"
	"mesafy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListTablesHandler returns a restaurant's tables.
func (hb *HandlerBundle) ListTablesHandler(c *gin.Context) {
	tables, err := hb.Restaurants.ListTables(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tables", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

// CreateTableHandler adds a table to a restaurant.
func (hb *HandlerBundle) CreateTableHandler(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if table.Capacity < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "capacity must be at least 1")
		return
	}

	table.ID = uuid.New().String()
	table.RestaurantID = c.Param("id")
	if err := hb.Restaurants.CreateTable(c.Request.Context(), &table); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create table", err.Error())
		return
	}
	c.JSON(http.StatusCreated, table)
}

// UpdateTableHandler edits a table.
func (hb *HandlerBundle) UpdateTableHandler(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if table.Capacity < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "capacity must be at least 1")
		return
	}

	table.ID = c.Param("tableId")
	table.RestaurantID = c.Param("id")
	if err := hb.Restaurants.UpdateTable(c.Request.Context(), &table); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update table", err.Error())
		return
	}
	c.JSON(http.StatusOK, table)
}

// DeleteTableHandler removes a table.
func (hb *HandlerBundle) DeleteTableHandler(c *gin.Context) {
	if err := hb.Restaurants.DeleteTable(c.Request.Context(), c.Param("id"), c.Param("tableId")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete table", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
