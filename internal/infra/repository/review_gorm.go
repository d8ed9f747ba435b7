package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
	ucreview "github.com/Cappu123/GorgieSalon-Booking-API/internal/usecase/review"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *ReviewGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleStylist).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	err := r.db.WithContext(ctx).Create(rv).Error

	// Unique index on appointment_id: a concurrent duplicate loses here.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeDuplicateReview)
	}

	return err
}

func (r *ReviewGormRepository) HasReview(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReviewGormRepository) AverageRating(
	ctx context.Context,
	stylistID uint,
) (*float64, int64, error) {

	var row struct {
		Avg   *float64
		Count int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(reviews.rating) AS avg, COUNT(reviews.id) AS count").
		Joins("JOIN appointments ON appointments.id = reviews.appointment_id").
		Where("appointments.stylist_id = ?", stylistID).
		Scan(&row).Error
	if err != nil {
		return nil, 0, err
	}

	return row.Avg, row.Count, nil
}

// Compile-time check
var _ ucreview.Repository = (*ReviewGormRepository)(nil)
