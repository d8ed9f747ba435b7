package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/cache"
	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	stylists     map[uint]*models.User
	reviews      map[uint]*models.Review // keyed by appointment id
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		stylists:     map[uint]*models.User{},
		reviews:      map[uint]*models.Review{},
		nextID:       1,
	}
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) GetStylist(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.stylists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) CreateReview(_ context.Context, rv *models.Review) error {
	if _, ok := r.reviews[rv.AppointmentID]; ok {
		return httperr.ErrBusiness(httperr.CodeDuplicateReview)
	}
	rv.ID = r.nextID
	r.nextID++
	cp := *rv
	r.reviews[rv.AppointmentID] = &cp
	return nil
}

func (r *fakeRepo) HasReview(_ context.Context, appointmentID uint) (bool, error) {
	_, ok := r.reviews[appointmentID]
	return ok, nil
}

func (r *fakeRepo) AverageRating(_ context.Context, stylistID uint) (*float64, int64, error) {
	var sum, count int64
	for apID, rv := range r.reviews {
		ap := r.appointments[apID]
		if ap == nil || ap.StylistID != stylistID {
			continue
		}
		sum += int64(rv.Rating)
		count++
	}
	if count == 0 {
		return nil, 0, nil
	}
	avg := float64(sum) / float64(count)
	return &avg, count, nil
}

var _ Repository = (*fakeRepo)(nil)

type fakeCache struct {
	snapshots   map[uint]*cache.RatingSnapshot
	invalidated []uint
}

func newFakeCache() *fakeCache {
	return &fakeCache{snapshots: map[uint]*cache.RatingSnapshot{}}
}

func (f *fakeCache) Get(_ context.Context, stylistID uint) (*cache.RatingSnapshot, bool) {
	snap, ok := f.snapshots[stylistID]
	return snap, ok
}

func (f *fakeCache) Set(_ context.Context, stylistID uint, snap *cache.RatingSnapshot) {
	f.snapshots[stylistID] = snap
}

func (f *fakeCache) Invalidate(_ context.Context, stylistID uint) {
	delete(f.snapshots, stylistID)
	f.invalidated = append(f.invalidated, stylistID)
}

var _ RatingCache = (*fakeCache)(nil)

// ======================================================
// FIXTURES
// ======================================================

const (
	clientID  = uint(1)
	stylistID = uint(2)
)

func seededRepo(status domain.Status) *fakeRepo {
	repo := newFakeRepo()
	repo.stylists[stylistID] = &models.User{
		ID: stylistID, Username: "sam", Role: models.RoleStylist, Active: true, Verified: true,
	}
	repo.appointments[10] = &models.Appointment{
		ID:        10,
		ClientID:  clientID,
		StylistID: stylistID,
		ServiceID: 5,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		Status:    string(status),
	}
	return repo
}

// ======================================================
// CREATE REVIEW
// ======================================================

func TestCreateReview_HappyPath(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	ratings := newFakeCache()
	uc := NewCreateReview(repo, ratings, nil)

	rv, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 10,
		ClientID:      clientID,
		Rating:        5,
		Comment:       "great cut",
	})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if rv.AppointmentID != 10 || rv.Rating != 5 {
		t.Fatalf("unexpected review: %+v", rv)
	}
	if len(ratings.invalidated) != 1 || ratings.invalidated[0] != stylistID {
		t.Fatalf("rating cache not invalidated for stylist: %v", ratings.invalidated)
	}
}

func TestCreateReview_SecondReviewConflicts(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewCreateReview(repo, newFakeCache(), nil)

	in := CreateReviewInput{AppointmentID: 10, ClientID: clientID, Rating: 4}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first review failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeDuplicateReview) {
		t.Fatalf("expected duplicate_review, got %v", err)
	}
}

func TestCreateReview_RequiresCompletedAppointment(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusRejected,
		domain.StatusCancelled,
	} {
		repo := seededRepo(status)
		uc := NewCreateReview(repo, newFakeCache(), nil)

		_, err := uc.Execute(context.Background(), CreateReviewInput{
			AppointmentID: 10, ClientID: clientID, Rating: 4,
		})
		if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
			t.Fatalf("%s: expected invalid_state, got %v", status, err)
		}
	}
}

func TestCreateReview_OnlyOwningClient(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewCreateReview(repo, newFakeCache(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 10, ClientID: 99, Rating: 4,
	})
	if !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateReview_RatingBounds(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewCreateReview(repo, newFakeCache(), nil)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			AppointmentID: 10, ClientID: clientID, Rating: rating,
		})
		if !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestCreateReview_UnknownAppointment(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewCreateReview(repo, newFakeCache(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 404, ClientID: clientID, Rating: 4,
	})
	if !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

// ======================================================
// AVERAGE RATING
// ======================================================

func TestGetAverageRating_EmptySentinel(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewGetAverageRating(repo, newFakeCache())

	snap, err := uc.Execute(context.Background(), stylistID)
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if snap.Average != nil {
		t.Fatalf("expected nil average for zero reviews, got %v", *snap.Average)
	}
	if snap.Count != 0 {
		t.Fatalf("expected count 0, got %d", snap.Count)
	}
}

func TestGetAverageRating_RoundsToTwoDecimals(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	repo.appointments[11] = &models.Appointment{
		ID: 11, ClientID: clientID, StylistID: stylistID, Status: string(domain.StatusCompleted),
	}
	repo.appointments[12] = &models.Appointment{
		ID: 12, ClientID: clientID, StylistID: stylistID, Status: string(domain.StatusCompleted),
	}
	repo.reviews[10] = &models.Review{ID: 1, AppointmentID: 10, Rating: 5}
	repo.reviews[11] = &models.Review{ID: 2, AppointmentID: 11, Rating: 4}
	repo.reviews[12] = &models.Review{ID: 3, AppointmentID: 12, Rating: 4}

	uc := NewGetAverageRating(repo, newFakeCache())

	snap, err := uc.Execute(context.Background(), stylistID)
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if snap.Average == nil || *snap.Average != 4.33 {
		t.Fatalf("expected 4.33, got %v", snap.Average)
	}
	if snap.Count != 3 {
		t.Fatalf("expected count 3, got %d", snap.Count)
	}
}

func TestGetAverageRating_ServedFromCache(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	ratings := newFakeCache()

	avg := 4.5
	ratings.snapshots[stylistID] = &cache.RatingSnapshot{Average: &avg, Count: 2}

	uc := NewGetAverageRating(repo, ratings)

	snap, err := uc.Execute(context.Background(), stylistID)
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if snap.Average == nil || *snap.Average != 4.5 || snap.Count != 2 {
		t.Fatalf("expected cached snapshot, got %+v", snap)
	}
}

// failingRepo stands in for a database that is down rather than a row
// that is missing.
type failingRepo struct {
	*fakeRepo
	err error
}

func (r *failingRepo) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	return nil, r.err
}

func TestCreateReview_StorageErrorNotMaskedAsNotFound(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &failingRepo{fakeRepo: seededRepo(domain.StatusCompleted), err: boom}
	uc := NewCreateReview(repo, newFakeCache(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 10, ClientID: clientID, Rating: 4,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to pass through, got %v", err)
	}
}

func TestGetAverageRating_UnknownStylist(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewGetAverageRating(repo, newFakeCache())

	_, err := uc.Execute(context.Background(), 404)
	if !httperr.IsBusiness(err, httperr.CodeStylistNotFound) {
		t.Fatalf("expected stylist_not_found, got %v", err)
	}
}
