package bookingadmin

import (
	"fmt"

	"meetdesk/models"
)

// transitions is the booking lifecycle: pending -> confirmed -> completed,
// with cancelled reachable from pending or confirmed. Completed and cancelled
// are terminal; hard delete is allowed from any state and is not a transition.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError signals a lifecycle move the state machine forbids.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}
