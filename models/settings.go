package models

import "time"

// Availability is one weekday's bookable window, in the admin timezone.
type Availability struct {
	DayOfWeek   int    `bson:"day_of_week" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string `bson:"start_time" json:"startTime"`  // "HH:MM"
	EndTime     string `bson:"end_time" json:"endTime"`      // "HH:MM"
	IsAvailable bool   `bson:"is_available" json:"isAvailable"`
}

// BookingSettings is the singleton configuration the booking engine runs on.
type BookingSettings struct {
	ID                 string         `bson:"id" json:"id"`
	Timezone           string         `bson:"timezone" json:"timezone"` // admin IANA timezone; bookings are stored in it
	SlotDuration       int            `bson:"slot_duration" json:"slotDuration"`              // minutes per slot
	BufferTime         int            `bson:"buffer_time" json:"bufferTime"`                  // minutes between slots
	AdvanceBookingDays int            `bson:"advance_booking_days" json:"advanceBookingDays"` // horizon
	WorkingDays        []int          `bson:"working_days" json:"workingDays"`                // weekday integers
	Availability       []Availability `bson:"availability" json:"availability"`               // at most one entry per weekday
	BlockedDates       []string       `bson:"blocked_dates" json:"blockedDates"`              // "YYYY-MM-DD" dates with no slots
	CreatedAt          time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updated_at" json:"updatedAt"`
}

// SettingsUpdate carries partial settings changes; nil means "leave unchanged".
type SettingsUpdate struct {
	Timezone           *string         `bson:"timezone,omitempty"`
	SlotDuration       *int            `bson:"slot_duration,omitempty"`
	BufferTime         *int            `bson:"buffer_time,omitempty"`
	AdvanceBookingDays *int            `bson:"advance_booking_days,omitempty"`
	WorkingDays        *[]int          `bson:"working_days,omitempty"`
	Availability       *[]Availability `bson:"availability,omitempty"`
	BlockedDates       *[]string       `bson:"blocked_dates,omitempty"`
}

// DefaultBookingSettings returns the settings seeded on first read:
// Monday to Friday, 09:00-17:00, 30-minute slots with a 15-minute buffer.
func DefaultBookingSettings(timezone string) BookingSettings {
	weekdays := []Availability{}
	for day := 1; day <= 5; day++ {
		weekdays = append(weekdays, Availability{
			DayOfWeek:   day,
			StartTime:   "09:00",
			EndTime:     "17:00",
			IsAvailable: true,
		})
	}
	return BookingSettings{
		Timezone:           timezone,
		SlotDuration:       30,
		BufferTime:         15,
		AdvanceBookingDays: 30,
		WorkingDays:        []int{1, 2, 3, 4, 5},
		Availability:       weekdays,
		BlockedDates:       []string{},
	}
}

// WorksOn reports whether the given weekday is a working day.
func (s *BookingSettings) WorksOn(weekday int) bool {
	for _, d := range s.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// AvailabilityFor returns the availability entry for a weekday, if any.
func (s *BookingSettings) AvailabilityFor(weekday int) (Availability, bool) {
	for _, a := range s.Availability {
		if a.DayOfWeek == weekday {
			return a, true
		}
	}
	return Availability{}, false
}

// DateBlocked reports whether the given "YYYY-MM-DD" date is blocked outright.
func (s *BookingSettings) DateBlocked(date string) bool {
	for _, d := range s.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}
