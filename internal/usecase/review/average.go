package review

import (
	"context"
	"errors"
	"math"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/cache"
	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
)

type GetAverageRating struct {
	repo    Repository
	ratings RatingCache
}

func NewGetAverageRating(
	repo Repository,
	ratings RatingCache,
) *GetAverageRating {
	return &GetAverageRating{
		repo:    repo,
		ratings: ratings,
	}
}

// Execute returns the stylist's mean rating rounded to two decimals.
// Average stays nil when the stylist has no reviews; there is no
// division anywhere for an empty set to break.
func (uc *GetAverageRating) Execute(
	ctx context.Context,
	stylistID uint,
) (*cache.RatingSnapshot, error) {

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeStylistNotFound)
		}
		return nil, err
	}

	if snap, ok := uc.ratings.Get(ctx, stylistID); ok {
		return snap, nil
	}

	avg, count, err := uc.repo.AverageRating(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	snap := &cache.RatingSnapshot{Count: count}
	if avg != nil {
		rounded := math.Round(*avg*100) / 100
		snap.Average = &rounded
	}

	uc.ratings.Set(ctx, stylistID, snap)

	return snap, nil
}
