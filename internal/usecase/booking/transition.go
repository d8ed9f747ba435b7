package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/audit"
	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	caller domain.Caller,
	target domain.Status,
) (*models.Appointment, error) {

	if !domain.ValidStatus(target) || target == domain.StatusPending {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	prior := domain.Status(ap.Status)

	if err := domain.Transition(ap, caller, target, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap, prior); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &caller.ID,
		ActorRole: caller.Role,
		Action:    "appointment_" + string(target),
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
