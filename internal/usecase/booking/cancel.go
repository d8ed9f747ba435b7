package booking

import (
	"context"

	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

// CancelAppointment is the dedicated cancellation entry point; it is the
// transition use case pinned to the cancelled state.
type CancelAppointment struct {
	transition *TransitionAppointment
}

func NewCancelAppointment(transition *TransitionAppointment) *CancelAppointment {
	return &CancelAppointment{transition: transition}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	caller domain.Caller,
) (*models.Appointment, error) {
	return uc.transition.Execute(ctx, appointmentID, caller, domain.StatusCancelled)
}
