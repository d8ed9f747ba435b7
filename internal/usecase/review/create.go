package review

import (
	"context"
	"errors"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/audit"
	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type CreateReviewInput struct {
	AppointmentID uint
	ClientID      uint
	Rating        int
	Comment       string
}

type CreateReview struct {
	repo    Repository
	ratings RatingCache
	audit   *audit.Dispatcher
}

func NewCreateReview(
	repo Repository,
	ratings RatingCache,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:    repo,
		ratings: ratings,
		audit:   audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	// Only the client the appointment belongs to may review it.
	if ap.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	exists, err := uc.repo.HasReview(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateReview)
	}

	rv := &models.Review{
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	uc.ratings.Invalidate(ctx, ap.StylistID)

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.ClientID,
		ActorRole: models.RoleClient,
		Action:    "review_created",
		Entity:    "review",
		EntityID:  &rv.ID,
	})

	return rv, nil
}
