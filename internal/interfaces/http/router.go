package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lifebank-api/internal/application/appointment"
	"github.com/jhoicas/lifebank-api/internal/application/auth"
	"github.com/jhoicas/lifebank-api/internal/application/chat"
	"github.com/jhoicas/lifebank-api/internal/application/dashboard"
	"github.com/jhoicas/lifebank-api/internal/application/donation"
	"github.com/jhoicas/lifebank-api/internal/application/report"
	"github.com/jhoicas/lifebank-api/internal/application/stock"
	"github.com/jhoicas/lifebank-api/internal/application/withdrawal"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Responder    *chat.Responder
	Ledger       *stock.Ledger
	DonationUC   *donation.RecordDonationUseCase
	ReportUC     *report.DonationReportUseCase
	WithdrawalUC *withdrawal.RequestWithdrawalUseCase
	ApptUC       *appointment.BookAppointmentUseCase
	DashboardUC  *dashboard.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Chat (público; el token, si viene, personaliza la respuesta)
	chatHandler := NewChatHandler(deps.Responder, deps.AuthUC)
	api.Post("/chat", OptionalAuth(deps.JWTSecret), chatHandler.Ask)

	// Stock (público, solo lectura)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger)
	stockGroup.Get("/", stockHandler.Snapshot)
	stockGroup.Get("/:bloodType", stockHandler.Level)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Donations (protegido)
	donations := protected.Group("/donations")
	donationHandler := NewDonationHandler(deps.DonationUC, deps.ReportUC)
	donations.Post("/", donationHandler.Record)
	donations.Get("/history", donationHandler.History)
	donations.Get("/report", donationHandler.Report)

	// Withdrawals (protegido)
	withdrawals := protected.Group("/withdrawals")
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalUC)
	withdrawals.Post("/", withdrawalHandler.Request)
	withdrawals.Get("/history", withdrawalHandler.History)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.ApptUC)
	appointments.Post("/", appointmentHandler.Book)
	appointments.Get("/", appointmentHandler.List)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC, deps.DashboardUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/me/dashboard", userHandler.Dashboard)

	// Admin (protegido + is_admin)
	admin := protected.Group("/admin", RequireAdmin())
	adminHandler := NewAdminHandler(deps.DonationUC)
	admin.Post("/adjust", adminHandler.Adjust)
}
