package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/audit"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httpresp"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

type CreateServiceRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	DurationMin    int     `json:"duration_min" binding:"required,gt=0"`
	Specialization string  `json:"specialization"`
}

type UpdateServiceRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price" binding:"omitempty,gt=0"`
	DurationMin    *int     `json:"duration_min" binding:"omitempty,gt=0"`
	Specialization string   `json:"specialization"`
}

// --------- Catalog reads (any authenticated role) ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	httpresp.OK(c, svc)
}

// --------- Catalog writes (admin only) ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DurationMin:    req.DurationMin,
		Specialization: req.Specialization,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateEntry, "A service with this name already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.dispatch(c, "service_created", &svc.ID)

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		svc.DurationMin = *req.DurationMin
	}
	if req.Specialization != "" {
		svc.Specialization = req.Specialization
	}

	if err := h.db.Save(&svc).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateEntry, "A service with this name already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	h.dispatch(c, "service_updated", &svc.ID)

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	// A service with stylists still assigned cannot be removed.
	var assignments int64
	h.db.Model(&models.StylistAssignment{}).
		Where("service_id = ?", id).
		Count(&assignments)
	if assignments > 0 {
		httperr.Conflict(c, httperr.CodeServiceInUse, "Unassign all stylists before deleting the service.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	h.dispatch(c, "service_deleted", &svc.ID)

	c.Status(http.StatusNoContent)
}

// --------- Stylist assignment (admin only) ---------

func (h *ServiceHandler) AssignStylist(c *gin.Context) {
	serviceID, err1 := parseIDParam(c, "id")
	stylistID, err2 := parseIDParam(c, "stylist_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service or stylist id.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, serviceID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	var stylist models.User
	if err := h.db.
		Where("id = ? AND role = ?", stylistID, models.RoleStylist).
		First(&stylist).Error; err != nil {
		httperr.NotFound(c, httperr.CodeStylistNotFound, "Stylist not found.")
		return
	}

	assignment := models.StylistAssignment{
		StylistID: stylistID,
		ServiceID: serviceID,
	}

	if err := h.db.Create(&assignment).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateEntry, "Stylist is already assigned to this service.")
			return
		}
		httperr.Internal(c, "failed_to_assign_stylist", "Could not assign the stylist.")
		return
	}

	h.dispatch(c, "stylist_assigned", &serviceID)

	httpresp.Created(c, assignment)
}

func (h *ServiceHandler) UnassignStylist(c *gin.Context) {
	serviceID, err1 := parseIDParam(c, "id")
	stylistID, err2 := parseIDParam(c, "stylist_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service or stylist id.")
		return
	}

	res := h.db.
		Where("stylist_id = ? AND service_id = ?", stylistID, serviceID).
		Delete(&models.StylistAssignment{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_unassign_stylist", "Could not unassign the stylist.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "assignment_not_found", "Assignment not found.")
		return
	}

	h.dispatch(c, "stylist_unassigned", &serviceID)

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) dispatch(c *gin.Context, action string, entityID *uint) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: c.GetString(middleware.ContextUserRole),
		Action:    action,
		Entity:    "service",
		EntityID:  entityID,
	})
}
