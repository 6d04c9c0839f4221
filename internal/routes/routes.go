package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chimeco/agenda-api/internal/cache"
	"github.com/chimeco/agenda-api/internal/config"
	"github.com/chimeco/agenda-api/internal/handlers"
	infraRepo "github.com/chimeco/agenda-api/internal/infra/repository"
	"github.com/chimeco/agenda-api/internal/middleware"
	"github.com/chimeco/agenda-api/internal/notify"
	ucAgenda "github.com/chimeco/agenda-api/internal/usecase/agenda"
	ucAppointment "github.com/chimeco/agenda-api/internal/usecase/appointment"
	ucBooking "github.com/chimeco/agenda-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	agendaCache := cache.NewAgendaCache(cfg.RedisAddr, cfg.RedisPassword)

	mailer := notify.NewMailer(cfg)
	ticketDispatcher := notify.NewDispatcher(mailer)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		agendaCache,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		agendaCache,
	)

	// ======================================================
	// USE CASES — AGENDA
	// ======================================================
	dayAgendaUC := ucAgenda.NewDayAgenda(appointmentRepo)
	weekAgendaUC := ucAgenda.NewWeekAgenda(appointmentRepo)
	monthAgendaUC := ucAgenda.NewMonthAgenda(appointmentRepo)
	yearAgendaUC := ucAgenda.NewYearAgenda(appointmentRepo, agendaCache)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		ticketDispatcher,
	)

	lookupBookingUC := ucBooking.NewLookupBooking(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	personHandler := handlers.NewPersonHandler(db)

	eventHandler := handlers.NewEventHandler(db, bookingRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		changeStatusUC,
	)

	agendaHandler := handlers.NewAgendaHandler(
		dayAgendaUC,
		weekAgendaUC,
		monthAgendaUC,
		yearAgendaUC,
	)

	publicHandler := handlers.NewPublicHandler(
		createBookingUC,
		lookupBookingUC,
		bookingRepo,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/events", publicHandler.ListEvents)
			publicAPI.GET("/events/:id", publicHandler.GetEvent)
			publicAPI.POST("/events/:id/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/bookings/:code", publicHandler.LookupBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/me/agenda", agendaHandler.Agenda)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/me/appointments/:id/status/:status", appointmentHandler.ChangeStatus)
			secured.GET("/me/appointments/:id/history", appointmentHandler.History)

			// ------------------------------
			// PESSOAS
			// ------------------------------
			secured.GET("/me/clients", personHandler.ListClients)
			secured.POST("/me/clients", personHandler.CreateClient)
			secured.PUT("/me/clients/:id", personHandler.UpdateClient)

			secured.GET("/me/staff", personHandler.ListStaff)
			secured.POST("/me/staff", personHandler.CreateStaff)
			secured.PUT("/me/staff/:id", personHandler.UpdateStaff)

			// ------------------------------
			// EVENTS
			// ------------------------------
			secured.POST("/me/events", eventHandler.Create)
			secured.PUT("/me/events/:id", eventHandler.Update)
			secured.PATCH("/me/events/:id/cancel", eventHandler.Cancel)
			secured.POST("/me/events/:id/duplicate", eventHandler.Duplicate)
			secured.GET("/me/events/:id/bookings", eventHandler.ListBookings)
			secured.PATCH("/me/events/:id/bookings/:bookingId/cancel", eventHandler.CancelBooking)

			secured.GET("/me/event-types", eventHandler.ListTypes)
			secured.POST("/me/event-types", eventHandler.CreateType)
			secured.DELETE("/me/event-types/:id", eventHandler.DeleteType)
		}
	}
}
