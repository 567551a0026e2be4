package bookingRepo

import (
	"errors"

	"meetdesk/models"
)

// ErrNotFound is returned when a booking id does not resolve to a record,
// typically because another admin action deleted it concurrently.
var ErrNotFound = errors.New("booking not found")

// ErrDuplicateSlot is returned when the storage-layer uniqueness constraint
// rejects a second confirmed booking for the same (date, time) pair.
var ErrDuplicateSlot = errors.New("a confirmed booking already exists for this slot")

// BookingRepository is the storage contract for booking records.
// Dates are "YYYY-MM-DD" strings and times "HH:MM" strings, both in the
// admin timezone.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	GetByDateRange(startDate, endDate string) ([]models.Booking, error)
	Update(id string, update models.BookingUpdate) error
	Delete(id string) error

	// CheckConflict returns the confirmed bookings occupying the exact
	// (date, time) pair, excluding the given booking id when non-empty.
	CheckConflict(date, timeOfDay string, excludeID string) ([]models.Booking, error)
}
