package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/audit"
	"github.com/marcafacil/booking-api/internal/config"
	"github.com/marcafacil/booking-api/internal/email"
	"github.com/marcafacil/booking-api/internal/handlers"
	"github.com/marcafacil/booking-api/internal/infra/repository"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/notification"
	"github.com/marcafacil/booking-api/internal/payments"
	"github.com/marcafacil/booking-api/internal/storage"
	ucAppointment "github.com/marcafacil/booking-api/internal/usecase/appointment"
	ucSlot "github.com/marcafacil/booking-api/internal/usecase/slot"
)

// RegisterRoutes liga toda a API: repositórios, use cases, handlers e grupos
// de rotas (marketplace público, autenticação e dashboard autenticado).
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	rdb *redis.Client,
	sender email.Sender,
	provider payments.Provider,
) {

	// ---------- infra partilhada ----------

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	notifier := notification.New(sender)
	uploader := storage.NewUploader(cfg)

	apRepo := repository.NewAppointmentGormRepository(db)
	slotRepo := repository.NewSlotGormRepository(db)

	// ---------- use cases ----------

	createUC := ucAppointment.NewCreateAppointment(apRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(apRepo, auditDispatcher)
	checkAvailabilityUC := ucAppointment.NewCheckAvailability(apRepo)
	getAvailabilityUC := ucAppointment.NewGetAvailability(apRepo)
	listByDateUC := ucAppointment.NewListByDate(apRepo)
	listByMonthUC := ucAppointment.NewListByMonth(apRepo)
	notifyUC := ucAppointment.NewNotifyStatus(apRepo, notifier, provider, auditDispatcher)
	cancelUC := ucAppointment.NewCancelByReference(apRepo, auditDispatcher)

	enrollUC := ucSlot.NewEnrollClient(slotRepo, auditDispatcher)
	removeEnrollmentUC := ucSlot.NewRemoveEnrollment(slotRepo, auditDispatcher)
	attendanceUC := ucSlot.NewToggleAttendance(slotRepo)

	// ---------- handlers ----------

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateStatusUC,
		checkAvailabilityUC,
		listByDateUC,
		listByMonthUC,
	)
	notificationHandler := handlers.NewNotificationHandler(notifyUC)
	slotHandler := handlers.NewSlotHandler(db, enrollUC, removeEnrollmentUC, attendanceUC)
	noteHandler := handlers.NewNoteHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	businessHandler := handlers.NewBusinessHandler(db, uploader)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(
		db,
		apRepo,
		createUC,
		getAvailabilityUC,
		cancelUC,
		notifier,
	)

	// ---------- observabilidade ----------

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ---------- marketplace público ----------

	public := r.Group("/api/public")
	if !cfg.RateLimitDisabled {
		limiter := middleware.NewRateLimiter(rdb, cfg.PublicRateLimit)
		public.Use(limiter.Middleware())
	}
	{
		public.GET("/:slug", publicHandler.GetBusiness)
		public.GET("/:slug/services", publicHandler.ListServices)
		public.GET("/:slug/staff", publicHandler.ListStaff)
		public.GET("/:slug/availability", publicHandler.GetAvailability)
		public.POST("/:slug/appointments", publicHandler.CreateAppointment)
		public.POST("/:slug/appointments/:reference/cancel", publicHandler.CancelAppointment)
	}

	// ---------- autenticação ----------

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ---------- dashboard autenticado ----------

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.Get)

		// Negócio
		api.GET("/business", businessHandler.Get)
		api.PUT("/business", businessHandler.Update)
		api.POST("/business/logo", businessHandler.UploadLogo)

		// Marcações
		api.POST("/business/appointments", appointmentHandler.Create)
		api.GET("/business/appointments", appointmentHandler.ListByDate)
		api.GET("/business/appointments/month", appointmentHandler.ListByMonth)
		// PUT faz a verificação booleana de disponibilidade
		api.PUT("/business/appointments", appointmentHandler.CheckAvailability)
		api.PATCH("/business/appointments/:id", appointmentHandler.UpdateStatus)

		// Notificações
		api.POST("/appointments/:id/notifications", notificationHandler.Notify)

		// Slots e inscrições
		api.POST("/slots", slotHandler.Create)
		api.GET("/slots", slotHandler.ListByDate)
		api.PATCH("/slots/:slotId", slotHandler.Update)
		api.DELETE("/slots/:slotId", slotHandler.Delete)
		api.POST("/slots/:slotId/students/:clientId", slotHandler.Enroll)
		api.DELETE("/slots/:slotId/students/:clientId", slotHandler.RemoveEnrollment)
		api.PATCH("/slots/:slotId/students/:studentId/attendance", slotHandler.ToggleAttendance)

		// Notas
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes", noteHandler.List)
		api.PATCH("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		// Equipa
		api.GET("/business/staff", staffHandler.List)
		api.POST("/business/staff", staffHandler.Create)
		api.PUT("/business/staff/:id", staffHandler.Update)
		api.DELETE("/business/staff/:id", staffHandler.Delete)

		// Categorias
		api.GET("/staff/categories", categoryHandler.List)
		api.POST("/staff/categories", categoryHandler.Create)
		api.PATCH("/staff/categories/:id", categoryHandler.Update)
		api.DELETE("/staff/categories/:id", categoryHandler.Delete)

		// Serviços
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// Clientes
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)

		// Expediente
		api.GET("/business/working-hours", workingHoursHandler.Get)
		api.PUT("/business/working-hours", workingHoursHandler.Update)

		// Histórico
		api.GET("/business/audit-logs", auditLogsHandler.List)
	}
}
