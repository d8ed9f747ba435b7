package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Cappu123/GorgieSalon-Booking-API/internal/domain/booking"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httpresp"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
	ucbooking "github.com/Cappu123/GorgieSalon-Booking-API/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucbooking.CreateAppointment
	transitionUC *ucbooking.TransitionAppointment
	cancelUC     *ucbooking.CancelAppointment
	listUC       *ucbooking.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucbooking.CreateAppointment,
	transitionUC *ucbooking.TransitionAppointment,
	cancelUC *ucbooking.CancelAppointment,
	listUC *ucbooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		cancelUC:     cancelUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StylistID uint   `json:"stylist_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Notes     string `json:"notes"`
}

type TransitionRequest struct {
	TargetState string `json:"target_state" binding:"required"`
}

func callerFrom(c *gin.Context) domain.Caller {
	return domain.Caller{
		ID:   c.MustGet(middleware.ContextUserID).(uint),
		Role: c.GetString(middleware.ContextUserRole),
	}
}

func writeBookingError(c *gin.Context, err error, message string) {
	var te domain.TransitionError
	if errors.As(err, &te) {
		httperr.Write(c, http.StatusUnprocessableEntity, httperr.CodeInvalidTransition, te.Error())
		return
	}
	httperr.FromError(c, err, message)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	caller := callerFrom(c)

	if caller.Role != models.RoleClient {
		httperr.Forbidden(c, httperr.CodeForbidden, "Only clients can book appointments.")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be RFC3339.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateAppointmentInput{
		ClientID:  caller.ID,
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		StartTime: start,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBookingError(c, err, "Could not create the appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// TRANSITION / CANCEL
// ======================================================

func (h *AppointmentHandler) Transition(c *gin.Context) {
	caller := callerFrom(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		id,
		caller,
		domain.Status(req.TargetState),
	)
	if err != nil {
		writeBookingError(c, err, "Could not update the appointment.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	caller := callerFrom(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, caller)
	if err != nil {
		writeBookingError(c, err, "Could not cancel the appointment.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	caller := callerFrom(c)

	clientID, err1 := parseIDQuery(c, "client_id")
	stylistID, err2 := parseIDQuery(c, "stylist_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_filter", "client_id and stylist_id must be numeric.")
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), caller, domain.ListFilter{
		ClientID:  clientID,
		StylistID: stylistID,
		Status:    c.Query("status"),
	})
	if err != nil {
		writeBookingError(c, err, "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}
