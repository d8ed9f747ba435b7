package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httpresp"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
	ucreview "github.com/Cappu123/GorgieSalon-Booking-API/internal/usecase/review"
)

type ReviewHandler struct {
	createUC *ucreview.CreateReview
}

func NewReviewHandler(createUC *ucreview.CreateReview) *ReviewHandler {
	return &ReviewHandler{createUC: createUC}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	if role != models.RoleClient {
		httperr.Forbidden(c, httperr.CodeForbidden, "Only clients can review appointments.")
		return
	}

	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rv, err := h.createUC.Execute(c.Request.Context(), ucreview.CreateReviewInput{
		AppointmentID: appointmentID,
		ClientID:      userID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err, "Could not create the review.")
		return
	}

	httpresp.Created(c, rv)
}
