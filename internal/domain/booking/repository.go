package booking

import (
	"context"
	"errors"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

// ErrNotFound is returned by lookups when the row does not exist. Any
// other repository error means storage itself failed and must not be
// presented to clients as a missing record.
var ErrNotFound = errors.New("record not found")

// ListFilter narrows ListAppointments. Nil pointer fields are ignored.
type ListFilter struct {
	ClientID  *uint
	StylistID *uint
	Status    string
}

type Repository interface {
	// -------- Identity / Catalog lookups --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	HasAssignment(
		ctx context.Context,
		stylistID uint,
		serviceID uint,
	) (bool, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists ap after verifying, inside one
	// transaction with the stylist's live rows locked, that no pending
	// or accepted appointment overlaps [StartTime, EndTime). Returns a
	// slot_conflict business error when the slot is taken.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateAppointment commits a transition that was validated while
	// the row was in from. The write is conditional on the row still
	// being in from, so a transition racing another writer fails with
	// an invalid_transition business error instead of overwriting the
	// committed state.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
