package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httpresp"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
	ucreview "github.com/Cappu123/GorgieSalon-Booking-API/internal/usecase/review"
)

type StylistHandler struct {
	db        *gorm.DB
	avgRating *ucreview.GetAverageRating
}

func NewStylistHandler(db *gorm.DB, avgRating *ucreview.GetAverageRating) *StylistHandler {
	return &StylistHandler{db: db, avgRating: avgRating}
}

// List returns bookable stylists only; suspended and unverified ones
// are visible through the admin listing instead.
func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.User
	if err := h.db.
		Where("role = ? AND active = ? AND verified = ?", models.RoleStylist, true, true).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Could not list stylists.")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid stylist id.")
		return
	}

	var stylist models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, models.RoleStylist).
		First(&stylist).Error; err != nil {
		httperr.NotFound(c, httperr.CodeStylistNotFound, "Stylist not found.")
		return
	}

	var services []models.Service
	h.db.
		Joins("JOIN stylist_assignments ON stylist_assignments.service_id = services.id").
		Where("stylist_assignments.stylist_id = ?", id).
		Find(&services)

	httpresp.OK(c, gin.H{
		"stylist":  stylist,
		"services": services,
	})
}

func (h *StylistHandler) Rating(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid stylist id.")
		return
	}

	snap, err := h.avgRating.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "Could not compute the rating.")
		return
	}

	httpresp.OK(c, snap)
}
