package handlers

import (
	"net/http"

	"washly/models"
	"washly/services/wizard"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	Svc wizard.WizardService
}

func NewWizardHandler(svc wizard.WizardService) *WizardHandler {
	return &WizardHandler{Svc: svc}
}

// StartSession creates a wizard session, optionally pre-seeded with a
// service and address (the original site passes these as query parameters).
func (h *WizardHandler) StartSession(c *gin.Context) {
	var prefill models.DraftPatch
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&prefill); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}
	if v := c.Query("service"); v != "" {
		prefill.Service = &v
	}
	if v := c.Query("address"); v != "" {
		prefill.Address = &v
	}

	session, err := h.Svc.Start(c.Request.Context(), prefill)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current wizard state.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PatchSession applies draft field updates.
func (h *WizardHandler) PatchSession(c *gin.Context) {
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.Patch(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextStep advances the wizard when the current step validates.
func (h *WizardHandler) NextStep(c *gin.Context) {
	session, err := h.Svc.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PrevStep steps back without dropping entered fields.
func (h *WizardHandler) PrevStep(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitSession turns the completed draft into a pending booking.
func (h *WizardHandler) SubmitSession(c *gin.Context) {
	booking, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelSession discards the session.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
