package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/cache"
	"github.com/odremano/OBProyect/internal/clock"
	"github.com/odremano/OBProyect/internal/config"
	"github.com/odremano/OBProyect/internal/handlers"
	infraRepo "github.com/odremano/OBProyect/internal/infra/repository"
	"github.com/odremano/OBProyect/internal/media"
	"github.com/odremano/OBProyect/internal/metrics"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/models"
	"github.com/odremano/OBProyect/internal/payments"
	ucBooking "github.com/odremano/OBProyect/internal/usecase/booking"
	ucCatalog "github.com/odremano/OBProyect/internal/usecase/catalog"
	ucIdentity "github.com/odremano/OBProyect/internal/usecase/identity"
	ucMembership "github.com/odremano/OBProyect/internal/usecase/membership"
	ucSchedule "github.com/odremano/OBProyect/internal/usecase/schedule"
)

// Deps agrupa la infraestructura opcional que arma main.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Log      zerolog.Logger
	Cache    *cache.AvailabilityCache
	Storage  *media.Storage
	Payments *payments.Provider
	Metrics  *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	membershipRepo := infraRepo.NewMembershipGormRepository(d.DB)
	identityRepo := infraRepo.NewIdentityGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	clk := clock.New()

	// ======================================================
	// USE CASES
	// ======================================================
	slotsUC := ucBooking.NewGenerateSlots(bookingRepo, clk)
	daysUC := ucBooking.NewAvailableDays(bookingRepo, clk, d.Cache)
	createUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher, d.Cache, d.Cfg.BookingInitialStatus)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher, d.Cache, clk)
	completeUC := ucBooking.NewCompleteAppointment(bookingRepo, auditDispatcher, d.Cache, clk)
	myBookingsUC := ucBooking.NewMyBookings(bookingRepo, clk)
	agendaUC := ucBooking.NewAgenda(bookingRepo)

	workingHoursUC := ucSchedule.NewManageWorkingHours(scheduleRepo, auditDispatcher, d.Cache)
	timeBlocksUC := ucSchedule.NewManageTimeBlocks(scheduleRepo, auditDispatcher, d.Cache)

	servicesUC := ucCatalog.NewManageServices(catalogRepo, auditDispatcher)
	professionalsUC := ucCatalog.NewManageProfessionals(catalogRepo, auditDispatcher, d.Cache)
	publicCatalogUC := ucCatalog.NewPublicCatalog(catalogRepo)

	setRoleUC := ucMembership.NewSetRole(membershipRepo, auditDispatcher)
	listMembersUC := ucMembership.NewListMembers(membershipRepo)

	authUC := ucIdentity.NewAuth(identityRepo, auditDispatcher, clk, d.Cfg.JWTSecret)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authUC, publicCatalogUC)
	publicHandler := handlers.NewPublicHandler(publicCatalogUC, slotsUC, d.Metrics)
	bookingHandler := handlers.NewBookingHandler(
		slotsUC, daysUC, createUC, cancelUC, myBookingsUC,
		bookingRepo, d.Payments, d.Metrics, d.Log,
	)
	agendaHandler := handlers.NewAgendaHandler(d.DB, agendaUC, cancelUC, completeUC, professionalsUC, d.Metrics)
	dashboardHandler := handlers.NewDashboardHandler(d.DB)
	workingHoursHandler := handlers.NewWorkingHoursHandler(workingHoursUC)
	timeBlockHandler := handlers.NewTimeBlockHandler(timeBlocksUC)
	serviceHandler := handlers.NewServiceHandler(servicesUC)
	professionalHandler := handlers.NewProfessionalHandler(professionalsUC, setRoleUC, listMembersUC)
	meHandler := handlers.NewMeHandler(d.DB, professionalsUC, d.Storage)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.Summary)
			publicAPI.GET("/:slug/services", publicHandler.Services)
			publicAPI.GET("/:slug/professionals", publicHandler.Professionals)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/register", authHandler.RegisterClient)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register-negocio", authHandler.RegisterNegocio)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)
			secured.POST("/me/photo", meHandler.UploadPhoto)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			// ------------------------------
			// RESERVAS (CLIENTE)
			// ------------------------------
			secured.GET("/bookings/availability", bookingHandler.Availability)
			secured.GET("/bookings/available-days", bookingHandler.AvailableDays)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/mine", bookingHandler.MyBookings)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// AGENDA (PROFESIONAL)
			// ------------------------------
			professional := secured.Group("/agenda")
			professional.Use(middleware.RequireRole(models.RoleProfesional, models.RoleAdministrador))
			{
				professional.GET("", agendaHandler.ForDate)
				professional.GET("/days", agendaHandler.Days)
				professional.PATCH("/appointments/:id/cancel", agendaHandler.Cancel)
				professional.PATCH("/appointments/:id/complete", agendaHandler.Complete)
				professional.PATCH("/availability", agendaHandler.SetAvailability)
			}

			// ------------------------------
			// ADMINISTRACION
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdministrador))
			{
				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Deactivate)

				admin.GET("/professionals", professionalHandler.List)
				admin.PATCH("/professionals/:id", professionalHandler.Update)

				admin.GET("/professionals/:id/working-hours", workingHoursHandler.Get)
				admin.PUT("/professionals/:id/working-hours", workingHoursHandler.Replace)

				admin.GET("/professionals/:id/time-blocks", timeBlockHandler.List)
				admin.POST("/time-blocks", timeBlockHandler.Create)
				admin.DELETE("/time-blocks/:id", timeBlockHandler.Delete)

				admin.GET("/members", professionalHandler.Members)
				admin.POST("/members/role", professionalHandler.SetRole)

				admin.GET("/dashboard", dashboardHandler.Summary)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
