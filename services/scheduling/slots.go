package scheduling

import (
	"fmt"
	"time"

	"meetdesk/models"
)

// GenerateSlots produces the ordered bookable start times for one calendar
// day, as "HH:MM" strings in the viewer's timezone.
//
// The walk steps from the availability window start in increments of
// slotDuration+bufferTime, which guarantees a trailing buffer after every
// slot; a candidate is emitted only when a full slot still fits before the
// window end and no confirmed booking starts at exactly that time. Pending,
// cancelled and completed bookings never block a slot. The function is pure:
// recomputing with the same inputs yields the same sequence.
func GenerateSlots(date string, settings *models.BookingSettings, bookings []models.Booking, viewerTz string) ([]string, error) {
	if settings == nil {
		return nil, nil
	}
	if settings.DateBlocked(date) {
		return nil, nil
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	weekday := int(day.Weekday())

	if !settings.WorksOn(weekday) {
		return nil, nil
	}
	window, ok := settings.AvailabilityFor(weekday)
	if !ok || !window.IsAvailable {
		return nil, nil
	}

	slotDuration := settings.SlotDuration
	if slotDuration <= 0 {
		slotDuration = 30
	}
	bufferTime := settings.BufferTime
	if bufferTime < 0 {
		bufferTime = 0
	}

	adminTz := settings.Timezone
	sameTz := SameTimezone(adminTz, viewerTz)

	startClock, endClock := window.StartTime, window.EndTime
	if !sameTz {
		startClock, endClock, err = ConvertWindow(window.StartTime, window.EndTime, adminTz, viewerTz, date)
		if err != nil {
			return nil, err
		}
	}

	startMin, err := parseClock(startClock)
	if err != nil {
		return nil, err
	}
	endMin, err := parseClock(endClock)
	if err != nil {
		return nil, err
	}
	// A window whose converted start lands at or after its end (the viewer's
	// day boundary swallowed it) yields no slots for this day.
	if startMin >= endMin {
		return nil, nil
	}

	booked := make(map[string]bool)
	for _, b := range bookings {
		if b.Status != models.StatusConfirmed || b.ScheduledDate != date {
			continue
		}
		clock := b.ScheduledTime
		if !sameTz {
			_, clock, err = ConvertWallClock(b.ScheduledDate, b.ScheduledTime, adminTz, viewerTz)
			if err != nil {
				return nil, err
			}
		}
		booked[clock] = true
	}

	var slots []string
	step := slotDuration + bufferTime
	for cur := startMin; cur < endMin; cur += step {
		if cur+slotDuration > endMin {
			break
		}
		clock := formatClock(cur)
		if !booked[clock] {
			slots = append(slots, clock)
		}
	}
	return slots, nil
}
