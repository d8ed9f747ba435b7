package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/audit"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/cache"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/config"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/handlers"
	infraRepo "github.com/Cappu123/GorgieSalon-Booking-API/internal/infra/repository"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/middleware"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
	ucBooking "github.com/Cappu123/GorgieSalon-Booking-API/internal/usecase/booking"
	ucReview "github.com/Cappu123/GorgieSalon-Booking-API/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *slog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	ratings := cache.NewRatings(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	transitionAppointmentUC := ucBooking.NewTransitionAppointment(
		bookingRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		transitionAppointmentUC,
	)

	listAppointmentsUC := ucBooking.NewListAppointments(
		bookingRepo,
	)

	createReviewUC := ucReview.NewCreateReview(
		reviewRepo,
		ratings,
		auditDispatcher,
	)

	avgRatingUC := ucReview.NewGetAverageRating(
		reviewRepo,
		ratings,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	stylistHandler := handlers.NewStylistHandler(db, avgRatingUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register/stylist", authHandler.RegisterStylist)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.PUT("/me/password", meHandler.ChangePassword)
			secured.DELETE("/me", meHandler.DisableMe)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)

			secured.GET("/stylists", stylistHandler.List)
			secured.GET("/stylists/:id", stylistHandler.Get)
			secured.GET("/stylists/:id/rating", stylistHandler.Rating)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id", appointmentHandler.Transition)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/reviews", reviewHandler.Create)

			// ------------------------------
			// ADMIN
			// ------------------------------
			adminOnly := secured.Group("/")
			adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminOnly.GET("/users", adminHandler.ListUsers)
				adminOnly.POST("/users", adminHandler.CreateUser)
				adminOnly.POST("/stylists/:id/verify", adminHandler.VerifyStylist)
				adminOnly.POST("/stylists/:id/suspend", adminHandler.SuspendStylist)

				adminOnly.POST("/services", serviceHandler.Create)
				adminOnly.PATCH("/services/:id", serviceHandler.Update)
				adminOnly.DELETE("/services/:id", serviceHandler.Delete)
				adminOnly.POST("/services/:id/stylists/:stylist_id", serviceHandler.AssignStylist)
				adminOnly.DELETE("/services/:id/stylists/:stylist_id", serviceHandler.UnassignStylist)

				adminOnly.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
