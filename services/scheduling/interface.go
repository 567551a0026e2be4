package scheduling

import (
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "meetdesk/database/repository/booking"
	settingsRepo "meetdesk/database/repository/settings"
	"meetdesk/models"
	"meetdesk/services/notification"
)

// CreateBookingInput is what the public scheduling wizard submits. Date and
// Time are the visitor's selection in their own timezone; Timezone is the
// browser-detected IANA identifier.
type CreateBookingInput struct {
	MeetingType   models.MeetingType `json:"meetingType"`
	AttendeeName  string             `json:"attendeeName"`
	AttendeeEmail string             `json:"attendeeEmail"`
	AttendeePhone string             `json:"attendeePhone"`
	CompanyName   string             `json:"companyName"`
	Message       string             `json:"message"`
	Date          string             `json:"date"` // "YYYY-MM-DD"
	Time          string             `json:"time"` // "HH:MM"
	Timezone      string             `json:"timezone"`
	SessionID     string             `json:"sessionID"`
}

// SchedulingService drives the public booking flow: meeting types, bookable
// dates, slot lists in the visitor's timezone, and conflict-checked creation.
type SchedulingService interface {
	MeetingTypes() []models.MeetingTypeOption
	AvailableDates(viewerTz string) ([]string, error)
	AvailableSlots(date, viewerTz string) ([]string, error)
	CreateBooking(input CreateBookingInput) (*models.Booking, error)

	StartSession(session WizardSession) (string, error)
	UpdateSession(sessionID string, session WizardSession) (*WizardSession, error)
	CancelSession(sessionID string) error
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	BookingRepo  bookingRepo.BookingRepository
	SettingsRepo settingsRepo.SettingsRepository
	Cache        *redis.Client // settings read-through cache; optional
	SessionCache *redis.Client // wizard sessions; optional
	Reminders    *asynq.Client // meeting reminder queue; optional
	Notifier     notification.NotificationService
	Logger       *zap.Logger
}
