package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetdesk/services/scheduling"
	"meetdesk/utils"
)

// SchedulingHandler serves the public booking wizard endpoints.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

func NewSchedulingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Logger: logger}
}

// respondSchedulingError maps service errors onto the public API contract.
func (h *SchedulingHandler) respondSchedulingError(c *gin.Context, err error) {
	var validation scheduling.ValidationErrors
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validation})
	case errors.Is(err, scheduling.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrSettingsUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Settings not loaded. Please refresh the page."})
	case errors.Is(err, scheduling.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("scheduling request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process request", "Please try again later.")
	}
}

// GetMeetingTypes returns the fixed meeting-type catalogue.
func (h *SchedulingHandler) GetMeetingTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"meetingTypes": h.Service.MeetingTypes()})
}

// GetAvailableDates lists bookable dates within the advance-booking horizon.
func (h *SchedulingHandler) GetAvailableDates(c *gin.Context) {
	dates, err := h.Service.AvailableDates(c.Query("tz"))
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetAvailableSlots lists open slot start times for a date, in the viewer's
// timezone when ?tz= is given.
func (h *SchedulingHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	slots, err := h.Service.AvailableSlots(date, c.Query("tz"))
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateBooking finalizes the wizard: validates, converts to the admin
// timezone, re-checks the slot and persists the booking as confirmed.
func (h *SchedulingHandler) CreateBooking(c *gin.Context) {
	var input scheduling.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Service.CreateBooking(input)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// StartSession creates a new wizard session.
func (h *SchedulingHandler) StartSession(c *gin.Context) {
	var session scheduling.WizardSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID, err := h.Service.StartSession(session)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// UpdateSession overlays step data onto an existing wizard session.
func (h *SchedulingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var session scheduling.WizardSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateSession(sessionID, session)
	if err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": updated})
}

// CancelSession discards a wizard session.
func (h *SchedulingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		h.respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
