package bookingadmin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	bookingRepo "meetdesk/database/repository/booking"
	"meetdesk/models"
)

// ErrSlotTaken signals that the target slot of a reschedule is already held
// by another confirmed booking.
var ErrSlotTaken = errors.New("this time slot is already booked, please select another time")

const settingsCacheKey = "booking:settings"

// List returns bookings for the admin table, optionally narrowed by status
// and a case-insensitive search over attendee name, email and company.
func (svc *DefaultBookingAdminService) List(filter ListFilter) ([]models.Booking, error) {
	bookings, err := svc.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if filter.Status == "" && filter.Search == "" {
		return bookings, nil
	}

	needle := strings.ToLower(filter.Search)
	var filtered []models.Booking
	for _, b := range bookings {
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.AttendeeName), needle) &&
			!strings.Contains(strings.ToLower(b.AttendeeEmail), needle) &&
			!strings.Contains(strings.ToLower(b.CompanyName), needle) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// Get fetches one booking by id.
func (svc *DefaultBookingAdminService) Get(id string) (*models.Booking, error) {
	return svc.Repo.GetByID(id)
}

// transition moves a booking to a new status after checking the state machine.
func (svc *DefaultBookingAdminService) transition(id string, to models.BookingStatus) error {
	booking, err := svc.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if !CanTransition(booking.Status, to) {
		return &InvalidTransitionError{From: booking.Status, To: to}
	}

	if to == models.StatusConfirmed {
		// Approving a pending booking occupies its slot; make sure nothing
		// confirmed claimed it in the meantime.
		conflicts, err := svc.Repo.CheckConflict(booking.ScheduledDate, booking.ScheduledTime, booking.ID)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if len(conflicts) > 0 {
			return ErrSlotTaken
		}
	}

	status := to
	if err := svc.Repo.Update(id, models.BookingUpdate{Status: &status}); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return ErrSlotTaken
		}
		return err
	}

	svc.logger().Info("booking status changed",
		zap.String("bookingID", id),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(to)))
	return nil
}

// Approve moves a pending booking to confirmed, occupying its slot.
func (svc *DefaultBookingAdminService) Approve(id string) error {
	return svc.transition(id, models.StatusConfirmed)
}

// Cancel moves a booking to cancelled, freeing its slot immediately.
func (svc *DefaultBookingAdminService) Cancel(id string) error {
	return svc.transition(id, models.StatusCancelled)
}

// Complete marks a confirmed booking as held. No slot effect: the date has
// passed and completed bookings never block.
func (svc *DefaultBookingAdminService) Complete(id string) error {
	return svc.transition(id, models.StatusCompleted)
}

// Delete removes the record entirely, freeing the slot from any state.
func (svc *DefaultBookingAdminService) Delete(id string) error {
	if err := svc.Repo.Delete(id); err != nil {
		return err
	}
	svc.logger().Info("booking deleted", zap.String("bookingID", id))
	return nil
}

// Forward reassigns a booking to a new recipient and optionally reschedules
// it in the same operation. A reschedule re-runs the conflict check against
// the new slot, excluding the booking's own current occupancy; the booking's
// status is left untouched.
func (svc *DefaultBookingAdminService) Forward(id string, input ForwardInput) error {
	if strings.TrimSpace(input.ForwardedTo) == "" {
		return fmt.Errorf("forwardedTo is required")
	}
	reschedule := input.NewDate != "" || input.NewTime != ""
	if reschedule && (input.NewDate == "" || input.NewTime == "") {
		return fmt.Errorf("rescheduling requires both a new date and a new time")
	}

	booking, err := svc.Repo.GetByID(id)
	if err != nil {
		return err
	}

	forwardedTo := strings.TrimSpace(input.ForwardedTo)
	update := models.BookingUpdate{ForwardedTo: &forwardedTo}
	if input.AdminNotes != "" {
		notes := input.AdminNotes
		update.AdminNotes = &notes
	}

	if reschedule {
		conflicts, err := svc.Repo.CheckConflict(input.NewDate, input.NewTime, booking.ID)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if len(conflicts) > 0 {
			return ErrSlotTaken
		}
		update.ScheduledDate = &input.NewDate
		update.ScheduledTime = &input.NewTime
	}

	if err := svc.Repo.Update(id, update); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return ErrSlotTaken
		}
		return err
	}

	svc.logger().Info("booking forwarded",
		zap.String("bookingID", id),
		zap.String("forwardedTo", forwardedTo),
		zap.Bool("rescheduled", reschedule))
	return nil
}

func (svc *DefaultBookingAdminService) invalidateSettingsCache() {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Del(context.Background(), settingsCacheKey).Err(); err != nil {
		svc.logger().Warn("failed to invalidate settings cache", zap.Error(err))
	}
}

func (svc *DefaultBookingAdminService) logger() *zap.Logger {
	if svc.Logger != nil {
		return svc.Logger
	}
	return zap.L()
}
