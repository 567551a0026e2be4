package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "meetdesk/database/repository/booking"
	"meetdesk/models"
	"meetdesk/services/tasks"
)

const (
	settingsCacheKey = "booking:settings"
	settingsCacheTTL = 5 * time.Minute

	// Dates shown to a visitor at once; the horizon itself comes from settings.
	maxDatesShown = 14

	reminderLead = time.Hour
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MeetingTypes returns the fixed catalogue of bookable meeting types.
func (svc *DefaultSchedulingService) MeetingTypes() []models.MeetingTypeOption {
	return models.MeetingTypes
}

// loadSettings fetches the settings singleton through the Redis cache. Cache
// failures fall back to the repository; repository failures are fatal for the
// current operation.
func (svc *DefaultSchedulingService) loadSettings() (*models.BookingSettings, error) {
	ctx := context.Background()

	if svc.Cache != nil {
		if raw, err := svc.Cache.Get(ctx, settingsCacheKey).Result(); err == nil {
			var settings models.BookingSettings
			if err := json.Unmarshal([]byte(raw), &settings); err == nil {
				return &settings, nil
			}
		}
	}

	settings, err := svc.SettingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	if svc.Cache != nil {
		if raw, err := json.Marshal(settings); err == nil {
			if err := svc.Cache.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
				svc.logger().Warn("failed to cache booking settings", zap.Error(err))
			}
		}
	}
	return settings, nil
}

// AvailableDates lists the bookable calendar dates: working days starting
// tomorrow within the advance-booking horizon, minus blocked dates, capped at
// a screenful. Days are counted in the admin timezone.
func (svc *DefaultSchedulingService) AvailableDates(viewerTz string) ([]string, error) {
	settings, err := svc.loadSettings()
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if l, err := time.LoadLocation(NormalizeTimezone(settings.Timezone)); err == nil {
		loc = l
	}

	today := time.Now().In(loc)
	dates := []string{}
	for offset := 1; offset <= settings.AdvanceBookingDays && len(dates) < maxDatesShown; offset++ {
		day := today.AddDate(0, 0, offset)
		if !settings.WorksOn(int(day.Weekday())) {
			continue
		}
		date := day.Format(dateLayout)
		if settings.DateBlocked(date) {
			continue
		}
		dates = append(dates, date)
	}
	return dates, nil
}

// AvailableSlots returns the open slot start times for one date, in the
// viewer's timezone. The result is a snapshot: the authoritative check
// happens again at creation time.
func (svc *DefaultSchedulingService) AvailableSlots(date, viewerTz string) ([]string, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ValidationErrors{"date": "date must be in YYYY-MM-DD format"}
	}

	settings, err := svc.loadSettings()
	if err != nil {
		return nil, err
	}

	bookings, err := svc.BookingRepo.GetByDateRange(date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	return GenerateSlots(date, settings, bookings, viewerTz)
}

func validateBookingInput(input CreateBookingInput) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(input.AttendeeName) == "" {
		errs["attendeeName"] = "Name is required"
	}
	if strings.TrimSpace(input.AttendeeEmail) == "" {
		errs["attendeeEmail"] = "Email is required"
	} else if !emailPattern.MatchString(input.AttendeeEmail) {
		errs["attendeeEmail"] = "Please enter a valid email address"
	}
	if _, ok := models.MeetingTypeByID(input.MeetingType); !ok {
		errs["meetingType"] = "Unknown meeting type"
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		errs["date"] = "Date must be in YYYY-MM-DD format"
	}
	if _, err := time.Parse(clockLayout, input.Time); err != nil {
		errs["time"] = "Time must be in HH:MM format"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CreateBooking converts the visitor's selection into the admin timezone,
// re-checks the slot immediately before persisting, and stores the booking as
// confirmed. The storage layer's uniqueness constraint backs the re-check, so
// a lost race still cannot double-book a slot.
func (svc *DefaultSchedulingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if errs := validateBookingInput(input); errs != nil {
		return nil, errs
	}

	settings, err := svc.loadSettings()
	if err != nil {
		return nil, err
	}

	adminDate, adminTime, err := ConvertWallClock(input.Date, input.Time, input.Timezone, settings.Timezone)
	if err != nil {
		return nil, ValidationErrors{"timezone": err.Error()}
	}

	// Re-check immediately before the write to close the window between slot
	// rendering and submission.
	conflicts, err := svc.BookingRepo.CheckConflict(adminDate, adminTime, "")
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotTaken
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		MeetingType:   input.MeetingType,
		AttendeeName:  strings.TrimSpace(input.AttendeeName),
		AttendeeEmail: strings.TrimSpace(input.AttendeeEmail),
		AttendeePhone: strings.TrimSpace(input.AttendeePhone),
		CompanyName:   strings.TrimSpace(input.CompanyName),
		Message:       strings.TrimSpace(input.Message),
		ScheduledDate: adminDate,
		ScheduledTime: adminTime,
		Timezone:      input.Timezone,
		Status:        models.StatusConfirmed,
	}

	if err := svc.BookingRepo.Create(booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Side effects after commit are best effort; the booking stands either way.
	svc.scheduleReminder(booking, settings.Timezone)
	if svc.Notifier != nil {
		if err := svc.Notifier.SendBookingConfirmation(booking); err != nil {
			svc.logger().Warn("failed to send booking confirmation",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if input.SessionID != "" {
		if err := svc.CancelSession(input.SessionID); err != nil {
			svc.logger().Debug("failed to clear wizard session",
				zap.String("sessionID", input.SessionID), zap.Error(err))
		}
	}

	return booking, nil
}

// scheduleReminder enqueues a reminder email ahead of the meeting start.
func (svc *DefaultSchedulingService) scheduleReminder(booking *models.Booking, adminTz string) {
	if svc.Reminders == nil {
		return
	}

	loc, err := time.LoadLocation(NormalizeTimezone(adminTz))
	if err != nil {
		svc.logger().Warn("cannot schedule reminder: bad admin timezone",
			zap.String("timezone", adminTz), zap.Error(err))
		return
	}
	start, err := time.ParseInLocation(dateLayout+" "+clockLayout, booking.ScheduledDate+" "+booking.ScheduledTime, loc)
	if err != nil {
		svc.logger().Warn("cannot schedule reminder: bad booking time",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}

	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(tasks.ReminderPayload{BookingID: booking.ID}, fireAt)
	if err != nil {
		svc.logger().Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := svc.Reminders.Enqueue(task, opts...); err != nil {
		svc.logger().Warn("failed to enqueue reminder task",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (svc *DefaultSchedulingService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}
