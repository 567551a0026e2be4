package bookingadmin

import (
	"fmt"
	"time"

	"meetdesk/models"
)

const (
	minSlotDuration = 15
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
)

// SettingsValidationError reports a rejected settings update.
type SettingsValidationError struct {
	Field   string
	Message string
}

func (e *SettingsValidationError) Error() string {
	return fmt.Sprintf("invalid settings: %s: %s", e.Field, e.Message)
}

// GetSettings returns the settings singleton, seeding defaults if absent.
func (svc *DefaultBookingAdminService) GetSettings() (*models.BookingSettings, error) {
	return svc.SettingsRepo.Get()
}

// UpdateSettings validates the update against the state it would produce and
// persists it, then drops the read-through cache so the public flow sees the
// change immediately.
func (svc *DefaultBookingAdminService) UpdateSettings(update models.SettingsUpdate) error {
	current, err := svc.SettingsRepo.Get()
	if err != nil {
		return err
	}

	next := *current
	if update.Timezone != nil {
		next.Timezone = *update.Timezone
	}
	if update.SlotDuration != nil {
		next.SlotDuration = *update.SlotDuration
	}
	if update.BufferTime != nil {
		next.BufferTime = *update.BufferTime
	}
	if update.AdvanceBookingDays != nil {
		next.AdvanceBookingDays = *update.AdvanceBookingDays
	}
	if update.WorkingDays != nil {
		next.WorkingDays = *update.WorkingDays
	}
	if update.Availability != nil {
		next.Availability = *update.Availability
	}
	if update.BlockedDates != nil {
		next.BlockedDates = *update.BlockedDates
	}

	if err := validateSettings(&next); err != nil {
		return err
	}
	if err := svc.SettingsRepo.Update(update); err != nil {
		return err
	}
	svc.invalidateSettingsCache()
	return nil
}

func validateSettings(s *models.BookingSettings) error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return &SettingsValidationError{Field: "timezone", Message: fmt.Sprintf("unknown timezone %q", s.Timezone)}
	}
	if s.SlotDuration < minSlotDuration {
		return &SettingsValidationError{Field: "slotDuration", Message: fmt.Sprintf("must be at least %d minutes", minSlotDuration)}
	}
	if s.BufferTime < 0 {
		return &SettingsValidationError{Field: "bufferTime", Message: "must not be negative"}
	}
	if s.AdvanceBookingDays < 1 {
		return &SettingsValidationError{Field: "advanceBookingDays", Message: "must be at least 1 day"}
	}

	for _, day := range s.WorkingDays {
		if day < 0 || day > 6 {
			return &SettingsValidationError{Field: "workingDays", Message: fmt.Sprintf("weekday %d out of range", day)}
		}
	}

	seen := make(map[int]bool)
	for _, a := range s.Availability {
		if a.DayOfWeek < 0 || a.DayOfWeek > 6 {
			return &SettingsValidationError{Field: "availability", Message: fmt.Sprintf("weekday %d out of range", a.DayOfWeek)}
		}
		if seen[a.DayOfWeek] {
			return &SettingsValidationError{Field: "availability", Message: fmt.Sprintf("duplicate entry for weekday %d", a.DayOfWeek)}
		}
		seen[a.DayOfWeek] = true

		start, err := time.Parse(clockLayout, a.StartTime)
		if err != nil {
			return &SettingsValidationError{Field: "availability", Message: fmt.Sprintf("invalid start time %q", a.StartTime)}
		}
		end, err := time.Parse(clockLayout, a.EndTime)
		if err != nil {
			return &SettingsValidationError{Field: "availability", Message: fmt.Sprintf("invalid end time %q", a.EndTime)}
		}
		// Overnight windows are rejected outright rather than given guessed
		// midnight-crossing semantics.
		if !start.Before(end) {
			return &SettingsValidationError{Field: "availability", Message: fmt.Sprintf("start time %s must be before end time %s", a.StartTime, a.EndTime)}
		}
	}

	for _, d := range s.BlockedDates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return &SettingsValidationError{Field: "blockedDates", Message: fmt.Sprintf("invalid date %q", d)}
		}
	}
	return nil
}
