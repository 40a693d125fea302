package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-mvp/internal/audit"
	"github.com/BruksfildServices01/barber-mvp/internal/config"
	"github.com/BruksfildServices01/barber-mvp/internal/docstore"
	"github.com/BruksfildServices01/barber-mvp/internal/handlers"
	"github.com/BruksfildServices01/barber-mvp/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-mvp/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/barber-mvp/internal/usecase/barber"
	ucClient "github.com/BruksfildServices01/barber-mvp/internal/usecase/client"
)

func RegisterRoutes(r *gin.Engine, store *docstore.Store, cfg *config.Config, log *zap.Logger) error {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreate(store, auditDispatcher, cfg.Timezone)

	addBarberUC := ucBarber.NewAdd(store, auditDispatcher)
	removeBarberUC := ucBarber.NewRemove(store, auditDispatcher)
	setDefaultBarberUC := ucBarber.NewSetDefault(store, auditDispatcher)

	addClientUC := ucClient.NewAdd(store, auditDispatcher)
	removeClientUC := ucClient.NewRemove(store, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler, err := handlers.NewAuthHandler(cfg)
	if err != nil {
		return err
	}

	barbershopHandler := handlers.NewBarbershopHandler(store)
	serviceHandler := handlers.NewServiceHandler(store, auditDispatcher)
	clientHandler := handlers.NewClientHandler(store, addClientUC, removeClientUC, cfg.Timezone)
	barberHandler := handlers.NewBarberHandler(store, addBarberUC, removeBarberUC, setDefaultBarberUC)
	appointmentHandler := handlers.NewAppointmentHandler(store, createAppointmentUC)
	requestHandler := handlers.NewRequestHandler(store, auditDispatcher, cfg.Timezone)
	statsHandler := handlers.NewStatsHandler(store, cfg.Timezone)

	publicHandler := handlers.NewPublicHandler(store, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (autoatendimento)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/booking-info", publicHandler.BookingInfo)
			publicAPI.POST("/requests", publicHandler.CreateRequest)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/overview", barbershopHandler.Overview)
			secured.PATCH("/barbershop", barbershopHandler.Update)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.GET("/clients/last-visit", clientHandler.LastVisitReport)

			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.DELETE("/barbers/:id", barberHandler.Delete)
			secured.PATCH("/barbers/:id/default", barberHandler.SetDefault)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)

			// ------------------------------
			// INBOX DE PEDIDOS
			// ------------------------------
			secured.GET("/requests", requestHandler.List)
			secured.GET("/requests/:id", requestHandler.Get)
			secured.PATCH("/requests/:id/status", requestHandler.UpdateStatus)
			secured.POST("/requests/seen", requestHandler.MarkSeen)

			secured.GET("/stats", statsHandler.Get)
		}
	}

	return nil
}
