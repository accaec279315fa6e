package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quochuydev/pet-app/internal/audit"
	"github.com/quochuydev/pet-app/internal/auth"
	"github.com/quochuydev/pet-app/internal/config"
	"github.com/quochuydev/pet-app/internal/handlers"
	infraRepo "github.com/quochuydev/pet-app/internal/infra/repository"
	"github.com/quochuydev/pet-app/internal/middleware"
	ucAppointment "github.com/quochuydev/pet-app/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, tokens, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
	)
	servicesHandler := handlers.NewServicesHandler()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", servicesHandler.List)
		api.GET("/services/:slug", servicesHandler.Get)

		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// ADMIN (session cookie required)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Session(tokens))
		{
			secured.GET("/appointments", appointmentHandler.List)
		}
	}
}
