package httperr

import "errors"

// Business error codes surfaced by the use cases. Each maps onto exactly
// one HTTP status in Status.
const (
	CodeUserNotFound        = "user_not_found"
	CodeStylistNotFound     = "stylist_not_found"
	CodeServiceNotFound     = "service_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeReviewNotFound      = "review_not_found"

	CodeForbidden          = "forbidden"
	CodeStylistNotBookable = "stylist_not_bookable"
	CodeNotAssigned        = "stylist_not_assigned_to_service"

	CodeInvalidTransition = "invalid_transition"
	CodeInvalidState      = "invalid_state"

	CodeSlotConflict    = "slot_conflict"
	CodeDuplicateReview = "duplicate_review"
	CodeNotElapsed      = "appointment_not_elapsed"
	CodeDuplicateEntry  = "already_exists"
	CodeServiceInUse    = "service_in_use"

	CodeValidation = "validation_failed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Status maps a business code to its HTTP status. Unknown codes fall
// through to 500 so a missing mapping never masquerades as client error.
func Status(code string) int {
	switch code {
	case CodeUserNotFound, CodeStylistNotFound, CodeServiceNotFound,
		CodeAppointmentNotFound, CodeReviewNotFound:
		return 404
	case CodeForbidden, CodeStylistNotBookable, CodeNotAssigned:
		return 403
	case CodeInvalidTransition, CodeInvalidState:
		return 422
	case CodeSlotConflict, CodeDuplicateReview, CodeNotElapsed,
		CodeDuplicateEntry, CodeServiceInUse:
		return 409
	case CodeValidation:
		return 400
	}
	return 500
}
