package handlers

import (
	"net/http"

	"washly/models"
	"washly/services/admin"
	"washly/services/notification"
	"washly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the operations dashboard endpoints.
type AdminHandler struct {
	Svc      admin.AdminService
	Notifier notification.NotificationService
}

func NewAdminHandler(svc admin.AdminService, notifier notification.NotificationService) *AdminHandler {
	return &AdminHandler{Svc: svc, Notifier: notifier}
}

// ListBookingsHandler returns all bookings with washer names resolved.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := ah.Svc.ListBookings(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListWashersHandler returns all washers.
func (ah *AdminHandler) ListWashersHandler(c *gin.Context) {
	washers, err := ah.Svc.ListWashers(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch washers", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, washers)
}

// GetMetricsHandler returns the derived dashboard summary.
func (ah *AdminHandler) GetMetricsHandler(c *gin.Context) {
	metrics, err := ah.Svc.Metrics(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute metrics", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// AssignWasherHandler binds a washer to a pending booking.
func (ah *AdminHandler) AssignWasherHandler(c *gin.Context) {
	var input struct {
		WasherID string `json:"washerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := ah.Svc.Assign(c.Request.Context(), c.Param("id"), input.WasherID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatusHandler applies a booking lifecycle transition.
func (ah *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	status, err := models.ParseBookingStatus(input.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := ah.Svc.SetBookingStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateWasherStatusHandler applies a washer state change.
func (ah *AdminHandler) UpdateWasherStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	status, err := models.ParseWasherStatus(input.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	washer, err := ah.Svc.SetWasherStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, washer)
}

// SendNotificationHandler queues a free-text notice for a user.
func (ah *AdminHandler) SendNotificationHandler(c *gin.Context) {
	var input struct {
		UserID  string `json:"userId" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := ah.Notifier.Send(c.Request.Context(), input.UserID, input.Message); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// LegalActionsHandler returns the action set for an entity type and status.
func (ah *AdminHandler) LegalActionsHandler(c *gin.Context) {
	actions, err := admin.LegalActions(c.Query("type"), c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}
