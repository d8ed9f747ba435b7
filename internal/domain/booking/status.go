package booking

import (
	"fmt"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(s Status) bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TransitionError reports a state-machine violation with enough context
// to tell the caller what was attempted.
type TransitionError struct {
	From Status
	To   Status
	Role string
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("cannot move appointment from %s to %s as %s", e.From, e.To, e.Role)
}

// Caller identifies who is requesting a transition.
type Caller struct {
	ID   uint
	Role string
}

// allowed returns whether the state machine permits current -> target,
// ignoring who asks.
func allowed(current, target Status) bool {
	switch target {
	case StatusAccepted, StatusRejected:
		return current == StatusPending
	case StatusCancelled:
		return current == StatusPending || current == StatusAccepted
	case StatusCompleted:
		return current == StatusAccepted
	}
	return false
}

// Authorize checks both the state machine and the caller's capability for
// the requested transition. Admins may perform any permitted transition;
// the assigned stylist owns accept/reject/complete; the booking client
// owns cancellation.
func Authorize(ap *models.Appointment, caller Caller, target Status) error {
	current := Status(ap.Status)

	if !allowed(current, target) {
		return TransitionError{From: current, To: target, Role: caller.Role}
	}

	if caller.Role == models.RoleAdmin {
		return nil
	}

	switch target {
	case StatusAccepted, StatusRejected, StatusCompleted:
		if caller.Role == models.RoleStylist && caller.ID == ap.StylistID {
			return nil
		}
	case StatusCancelled:
		if caller.Role == models.RoleClient && caller.ID == ap.ClientID {
			return nil
		}
	}

	return ErrNotAllowed
}
