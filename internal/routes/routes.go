package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/security"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucEarning "github.com/BruksfildServices01/barber-booking/internal/usecase/earning"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
)

// NewRouter monta o engine com os middlewares globais e as rotas.
func NewRouter(
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	auditDispatcher *audit.Dispatcher,
) *gin.Engine {

	r := gin.New()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins...),
		metrics.Middleware(),
	)

	RegisterRoutes(r, db, cfg, auditDispatcher)
	return r
}

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
) {

	expose := cfg.ExposeErrorDetails

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	earningRepo := infraRepo.NewEarningGormRepository(db)

	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	// ======================================================
	// 🧠 USE CASES: USERS
	// ======================================================
	registerUserUC := ucUser.NewRegisterUser(
		userRepo,
		hasher,
		auditDispatcher,
		cfg.CheckEmailDomain,
	)
	authenticateUC := ucUser.NewAuthenticate(userRepo, hasher)
	listUsersUC := ucUser.NewListUsers(userRepo)
	getUserUC := ucUser.NewGetUser(userRepo)

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	checkAvailabilityUC := ucAppointment.NewCheckAvailability(appointmentRepo)

	// ======================================================
	// 🧠 USE CASES: EARNINGS
	// ======================================================
	createEarningUC := ucEarning.NewCreateEarning(
		earningRepo,
		userRepo,
		appointmentRepo,
		auditDispatcher,
	)
	listEarningsUC := ucEarning.NewListEarnings(earningRepo, userRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(registerUserUC, listUsersUC, getUserUC, expose)
	authHandler := handlers.NewAuthHandler(authenticateUC, expose)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, expose)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
		checkAvailabilityUC,
		cfg.Timezone,
		expose,
	)

	earningHandler := handlers.NewEarningHandler(createEarningUC, listEarningsUC, cfg.Timezone, expose)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone, expose)
	healthHandler := handlers.NewHealthHandler(db, expose)

	// ======================================================
	// 🩺 INFRA
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/test-connection", healthHandler.TestConnection)

		// ------------------------------
		// USERS / AUTH
		// ------------------------------
		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.List)
		api.GET("/users/barbers", userHandler.ListBarbers)
		api.GET("/users/:id", userHandler.Get)
		api.GET("/barbers", userHandler.ListBarbers)

		api.POST("/auth", authHandler.Login)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/checkAppointmentAvailability", appointmentHandler.CheckAvailability)

		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/client/:id", appointmentHandler.ListByClient)
		api.GET("/appointments/barber/:id", appointmentHandler.ListByBarber)
		api.POST("/appointments", appointmentHandler.Create)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// EARNINGS
		// ------------------------------
		api.GET("/earnings", earningHandler.List)
		api.GET("/earnings/barber/:id", earningHandler.ListByBarber)
		api.POST("/earnings", earningHandler.Create)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
