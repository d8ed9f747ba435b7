package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const ratingTTL = 10 * time.Minute

// RatingSnapshot is the cached form of a stylist's aggregate rating.
// Average is nil when the stylist has no reviews yet.
type RatingSnapshot struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

// Ratings caches stylist rating aggregates in redis so the averaging
// query is not re-run on every profile view.
type Ratings struct {
	rdb *redis.Client
}

func NewRatings(rdb *redis.Client) *Ratings {
	return &Ratings{rdb: rdb}
}

func key(stylistID uint) string {
	return fmt.Sprintf("stylist:%d:rating", stylistID)
}

func (r *Ratings) Get(ctx context.Context, stylistID uint) (*RatingSnapshot, bool) {
	raw, err := r.rdb.Get(ctx, key(stylistID)).Result()
	if err != nil {
		return nil, false
	}

	var snap RatingSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

func (r *Ratings) Set(ctx context.Context, stylistID uint, snap *RatingSnapshot) {
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the query is the source
	// of truth.
	r.rdb.Set(ctx, key(stylistID), b, ratingTTL)
}

func (r *Ratings) Invalidate(ctx context.Context, stylistID uint) {
	r.rdb.Del(ctx, key(stylistID))
}
