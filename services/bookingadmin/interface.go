package bookingadmin

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "meetdesk/database/repository/booking"
	settingsRepo "meetdesk/database/repository/settings"
	"meetdesk/models"
)

// ListFilter narrows the admin booking list.
type ListFilter struct {
	Status string // one lifecycle state, or empty for all
	Search string // matched against attendee name, email and company
}

// ForwardInput is the forward/reschedule compound operation. NewDate and
// NewTime must both be set (or both empty); when set, the booking moves to
// the new slot after a conflict check that excludes the booking itself.
type ForwardInput struct {
	ForwardedTo string `json:"forwardedTo"`
	NewDate     string `json:"newDate"`
	NewTime     string `json:"newTime"`
	AdminNotes  string `json:"adminNotes"`
}

// BookingAdminService is the admin side of the booking lifecycle: state
// transitions, forwarding, deletion and settings management.
type BookingAdminService interface {
	List(filter ListFilter) ([]models.Booking, error)
	Get(id string) (*models.Booking, error)
	Approve(id string) error
	Cancel(id string) error
	Complete(id string) error
	Delete(id string) error
	Forward(id string, input ForwardInput) error

	GetSettings() (*models.BookingSettings, error)
	UpdateSettings(update models.SettingsUpdate) error
}

// DefaultBookingAdminService implements BookingAdminService.
type DefaultBookingAdminService struct {
	Repo         bookingRepo.BookingRepository
	SettingsRepo settingsRepo.SettingsRepository
	Cache        *redis.Client // settings cache to invalidate on update; optional
	Logger       *zap.Logger
}
