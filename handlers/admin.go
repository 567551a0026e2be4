package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "meetdesk/database/repository/booking"
	"meetdesk/models"
	"meetdesk/services/bookingadmin"
	"meetdesk/utils"
)

// AdminHandler serves the authenticated booking-management endpoints.
type AdminHandler struct {
	Service bookingadmin.BookingAdminService
	Logger  *zap.Logger
}

func NewAdminHandler(svc bookingadmin.BookingAdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

func (h *AdminHandler) respondAdminError(c *gin.Context, err error) {
	var transition *bookingadmin.InvalidTransitionError
	var settings *bookingadmin.SettingsValidationError
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bookingadmin.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &settings):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": settings.Field})
	default:
		h.Logger.Error("admin request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process request", "Please try again later.")
	}
}

// ListBookings returns bookings filtered by ?status= and ?search=.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter := bookingadmin.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if filter.Status != "" && !models.BookingStatus(filter.Status).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}
	bookings, err := h.Service.List(filter)
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GetBooking returns one booking by id.
func (h *AdminHandler) GetBooking(c *gin.Context) {
	booking, err := h.Service.Get(c.Param("id"))
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ApproveBooking moves a pending booking to confirmed.
func (h *AdminHandler) ApproveBooking(c *gin.Context) {
	h.updateStatus(c, h.Service.Approve, "confirmed")
}

// CancelBooking moves a booking to cancelled, freeing its slot.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	h.updateStatus(c, h.Service.Cancel, "cancelled")
}

// CompleteBooking marks a confirmed booking as held.
func (h *AdminHandler) CompleteBooking(c *gin.Context) {
	h.updateStatus(c, h.Service.Complete, "completed")
}

func (h *AdminHandler) updateStatus(c *gin.Context, op func(string) error, status string) {
	id := c.Param("id")
	if err := op(id); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingID": id, "status": status})
}

// ForwardBooking reassigns a booking and optionally reschedules it.
func (h *AdminHandler) ForwardBooking(c *gin.Context) {
	id := c.Param("id")
	var input bookingadmin.ForwardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.Forward(id, input); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) || errors.Is(err, bookingadmin.ErrSlotTaken) {
			h.respondAdminError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingID": id, "forwardedTo": input.ForwardedTo})
}

// DeleteBooking removes a booking record entirely.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingID": id, "status": "deleted"})
}

// GetSettings returns the booking settings singleton.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.Service.GetSettings()
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings applies a partial settings update after validating the
// resulting state as a whole.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateSettings(update); err != nil {
		h.respondAdminError(c, err)
		return
	}
	settings, err := h.Service.GetSettings()
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
