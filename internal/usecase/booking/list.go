package booking

import (
	"context"
	"errors"

	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists appointments visible to the caller. Clients and stylists
// are pinned to their own bookings; admins may filter freely.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	caller domain.Caller,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	if filter.Status != "" && !domain.ValidStatus(domain.Status(filter.Status)) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	switch caller.Role {
	case models.RoleClient:
		filter.ClientID = &caller.ID
	case models.RoleStylist:
		filter.StylistID = &caller.ID
	case models.RoleAdmin:
		if filter.ClientID != nil {
			if _, err := uc.repo.GetUser(ctx, *filter.ClientID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
				}
				return nil, err
			}
		}
		if filter.StylistID != nil {
			if _, err := uc.repo.GetUser(ctx, *filter.StylistID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, httperr.ErrBusiness(httperr.CodeStylistNotFound)
				}
				return nil, err
			}
		}
	default:
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return uc.repo.ListAppointments(ctx, filter)
}
