package booking

import (
	"time"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

var ErrNotAllowed = httperr.ErrBusiness(httperr.CodeForbidden)

// Apply performs an authorized transition on the appointment. The caller
// must have passed Authorize first; Apply re-checks only the conditions
// that depend on time.
func Apply(ap *models.Appointment, target Status, now time.Time) error {
	switch target {
	case StatusAccepted:
		ap.Status = string(StatusAccepted)
	case StatusRejected:
		ap.Status = string(StatusRejected)
	case StatusCancelled:
		ap.Status = string(StatusCancelled)
		ap.CancelledAt = &now
	case StatusCompleted:
		// A completion cannot be recorded before the slot has elapsed.
		if now.Before(ap.EndTime) {
			return httperr.ErrBusiness(httperr.CodeNotElapsed)
		}
		ap.Status = string(StatusCompleted)
		ap.CompletedAt = &now
	default:
		return TransitionError{From: Status(ap.Status), To: target}
	}
	return nil
}

// Transition authorizes and applies in one step.
func Transition(ap *models.Appointment, caller Caller, target Status, now time.Time) error {
	if err := Authorize(ap, caller, target); err != nil {
		return err
	}
	return Apply(ap, target, now)
}
