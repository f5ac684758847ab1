package handlers

import (
	"net/http"
	"time"

	"washly/services/catalog"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the wash packages and the availability grid.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListServices returns the bookable packages.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Svc.ListPackages()})
}

// ListDates returns the bookable date window.
func (h *CatalogHandler) ListDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": h.Svc.AvailableDates(time.Now())})
}

// GetAvailability returns the slot grid for a date.
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	slots, err := h.Svc.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
