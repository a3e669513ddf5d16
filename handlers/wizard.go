package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thecut/services/calendar"
	"thecut/services/catalog"
	"thecut/services/wizard"
)

// WizardHandler exposes the booking wizard over HTTP. Each endpoint maps to
// exactly one state-machine transition.
type WizardHandler struct {
	Svc    wizard.WizardService
	Logger *zap.Logger
}

func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Svc: svc, Logger: logger}
}

// GetServices returns the static service catalog.
func (h *WizardHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services()})
}

// GetDates returns the current 21-day availability window.
func (h *WizardHandler) GetDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": calendar.Window(time.Now(), calendar.DefaultHorizonDays)})
}

// GetTimes returns the fixed daily time grid.
func (h *WizardHandler) GetTimes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"times": catalog.TimeSlots()})
}

// StartSession opens a new wizard session for a barber's booking page.
func (h *WizardHandler) StartSession(c *gin.Context) {
	var input struct {
		BarberID string `json:"barberId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.Start(c.Request.Context(), input.BarberID)
	if err != nil {
		h.Logger.Error("failed to start wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession returns the session's current step and draft.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectService records the chosen service.
func (h *WizardHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID int `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectDate records the chosen calendar day.
func (h *WizardHandler) SelectDate(c *gin.Context) {
	var input struct {
		Full string `json:"full" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Full)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectTime records the chosen slot.
func (h *WizardHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back steps the wizard to the previous selection.
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm submits contact details and persists the reservation. A store
// write failure returns 502 with the session still on collect_details; the
// client may resubmit the same draft.
func (h *WizardHandler) Confirm(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"), input.Name, input.Phone)
	if err != nil {
		var writeErr *wizard.WriteError
		if errors.As(err, &writeErr) {
			h.Logger.Warn("reservation write failed", zap.Error(writeErr))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "Failed to save booking.",
				"retryable": true,
				"session":   session,
			})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Reset clears a confirmed session for another booking.
func (h *WizardHandler) Reset(c *gin.Context) {
	session, err := h.Svc.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession discards the session.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("failed to cancel wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var validationErr *wizard.ValidationError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	default:
		h.Logger.Error("wizard transition failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
