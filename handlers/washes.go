package handlers

import (
	"net/http"
	"time"

	"washly/services/washes"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// WashesHandler serves the customer "my washes" area and the washer portal.
type WashesHandler struct {
	Svc washes.WashesService
}

func NewWashesHandler(svc washes.WashesService) *WashesHandler {
	return &WashesHandler{Svc: svc}
}

// ListMyWashes returns a customer's upcoming and past washes.
func (h *WashesHandler) ListMyWashes(c *gin.Context) {
	result, err := h.Svc.CustomerWashes(c.Request.Context(), c.Query("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelWash cancels an upcoming wash.
func (h *WashesHandler) CancelWash(c *gin.Context) {
	booking, err := h.Svc.CancelWash(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// WasherDay returns a washer's jobs and performance for a date.
func (h *WashesHandler) WasherDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	day, err := h.Svc.WasherDay(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}
