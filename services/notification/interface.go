package notification

import "meetdesk/models"

// NotificationService sends booking-related emails to the attendee and the
// admin inbox. Implementations are best effort: the booking flow logs and
// continues when a send fails.
type NotificationService interface {
	SendBookingConfirmation(booking *models.Booking) error
	SendBookingReminder(booking *models.Booking) error
}
