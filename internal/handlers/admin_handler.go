package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/audit"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httpresp"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, audit *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: audit}
}

type AdminCreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=client stylist admin"`
}

// ListUsers returns every account, including suspended and unverified
// ones; optional ?role= filter.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := h.db.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create the user.")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Active:       true,
		// Admin-created stylists are trusted, no application flow.
		Verified: true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateEntry, "A user with this username or email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create the user.")
		return
	}

	h.dispatch(c, "user_created", "user", &user.ID)

	httpresp.Created(c, user)
}

// VerifyStylist approves a stylist application, making them bookable.
func (h *AdminHandler) VerifyStylist(c *gin.Context) {
	h.setStylistFlag(c, "stylist_verified", func(u *models.User) {
		u.Verified = true
	})
}

// SuspendStylist takes a stylist off the marketplace without touching
// their history.
func (h *AdminHandler) SuspendStylist(c *gin.Context) {
	h.setStylistFlag(c, "stylist_suspended", func(u *models.User) {
		u.Active = false
	})
}

func (h *AdminHandler) setStylistFlag(c *gin.Context, action string, mutate func(*models.User)) {
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

	mutate(&stylist)

	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Could not update the stylist.")
		return
	}

	h.dispatch(c, action, "user", &stylist.ID)

	httpresp.OK(c, stylist)
}

func (h *AdminHandler) dispatch(c *gin.Context, action, entity string, entityID *uint) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: models.RoleAdmin,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
	})
}
