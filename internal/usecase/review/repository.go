package review

import (
	"context"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/cache"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type Repository interface {
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	HasReview(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	// AverageRating returns the mean rating across all reviews whose
	// appointment references the stylist, nil when there are none.
	AverageRating(
		ctx context.Context,
		stylistID uint,
	) (*float64, int64, error)
}

// RatingCache is satisfied by cache.Ratings; a fake stands in for tests.
type RatingCache interface {
	Get(ctx context.Context, stylistID uint) (*cache.RatingSnapshot, bool)
	Set(ctx context.Context, stylistID uint, snap *cache.RatingSnapshot)
	Invalidate(ctx context.Context, stylistID uint)
}
