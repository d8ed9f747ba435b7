package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httpresp"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// UpdateProfileRequest is a partial patch: nil fields are left alone, so
// an email-only update cannot wipe a stylist's bio.
type UpdateProfileRequest struct {
	Email          *string `json:"email" binding:"omitempty,email"`
	Bio            *string `json:"bio"`
	Specialization *string `json:"specialization"`
}

func applyProfileUpdate(user *models.User, req UpdateProfileRequest) {
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Specialization != nil {
		user.Specialization = *req.Specialization
	}
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "Profile not found.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "Profile not found.")
		return
	}

	applyProfileUpdate(&user, req)

	if err := h.db.Save(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateEntry, "Email already in use.")
			return
		}
		httperr.Internal(c, "failed_to_update_profile", "Could not update the profile.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "Profile not found.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		httperr.Forbidden(c, "wrong_password", "Old password is incorrect.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not change the password.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not change the password.")
		return
	}

	httpresp.OK(c, user)
}

// DisableMe soft-disables the account. Rows are never deleted so past
// appointments keep valid references.
func (h *MeHandler) DisableMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "Profile not found.")
		return
	}

	user.Active = false
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_disable_account", "Could not disable the account.")
		return
	}

	c.Status(http.StatusNoContent)
}
