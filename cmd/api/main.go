package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/lifebank-api/internal/application/appointment"
	"github.com/jhoicas/lifebank-api/internal/application/auth"
	"github.com/jhoicas/lifebank-api/internal/application/chat"
	"github.com/jhoicas/lifebank-api/internal/application/dashboard"
	"github.com/jhoicas/lifebank-api/internal/application/donation"
	"github.com/jhoicas/lifebank-api/internal/application/report"
	"github.com/jhoicas/lifebank-api/internal/application/stock"
	"github.com/jhoicas/lifebank-api/internal/application/withdrawal"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/lifebank-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lifebank-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/lifebank-api/internal/interfaces/http"
	"github.com/jhoicas/lifebank-api/pkg/config"
	"github.com/jhoicas/lifebank-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	donationRepo := postgres.NewDonationRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	apptRepo := postgres.NewAppointmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	base, err := baseStockFromConfig(cfg.Stock)
	if err != nil {
		log.Fatal().Err(err).Msg("línea base de inventario")
	}
	ledger := stock.NewLedger(base, donationRepo, withdrawalRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	donationUC := donation.NewRecordDonationUseCase(donationRepo)
	withdrawalUC := withdrawal.NewRequestWithdrawalUseCase(txRunner, withdrawalRepo, base)
	apptUC := appointment.NewBookAppointmentUseCase(apptRepo)
	dashboardUC := dashboard.NewDashboardUseCase(authUC, donationUC, apptUC, ledger)
	responder := chat.NewResponder(ledger)

	// PDF: constancia del historial de donaciones del donante
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewDonationReportUseCase(userRepo, donationRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LifeBank API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Responder:    responder,
		Ledger:       ledger,
		DonationUC:   donationUC,
		ReportUC:     reportUC,
		WithdrawalUC: withdrawalUC,
		ApptUC:       apptUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// baseStockFromConfig traduce la configuración a la línea base tipada.
func baseStockFromConfig(sc config.StockConfig) (stock.BaseStock, error) {
	in := make(map[entity.BloodType]int, 8)
	for raw, qty := range sc.Base() {
		bt, err := entity.ParseBloodType(raw)
		if err != nil {
			return nil, err
		}
		in[bt] = qty
	}
	return stock.NewBaseStock(in)
}
