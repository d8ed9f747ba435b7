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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	StylistID uint
	ServiceID uint
	StartTime time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		return nil, err
	}
	if client.Role != models.RoleClient {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if !in.StartTime.After(uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	stylist, err := uc.repo.GetUser(ctx, in.StylistID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeStylistNotFound)
		}
		return nil, err
	}
	if stylist.Role != models.RoleStylist {
		return nil, httperr.ErrBusiness(httperr.CodeStylistNotFound)
	}
	if !stylist.Bookable() {
		return nil, httperr.ErrBusiness(httperr.CodeStylistNotBookable)
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}

	assigned, err := uc.repo.HasAssignment(ctx, stylist.ID, svc.ID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, httperr.ErrBusiness(httperr.CodeNotAssigned)
	}

	ap := &models.Appointment{
		ClientID:  client.ID,
		StylistID: stylist.ID,
		ServiceID: svc.ID,
		StartTime: in.StartTime,
		EndTime:   in.StartTime.Add(time.Duration(svc.DurationMin) * time.Minute),
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	// Overlap check and insert run in one transaction inside the
	// repository; a losing concurrent request comes back slot_conflict.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &client.ID,
		ActorRole: client.Role,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
