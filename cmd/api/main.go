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
	"github.com/swaggo/swag"

	"github.com/jhoicas/Temizlik-api/docs"

	"github.com/jhoicas/Temizlik-api/internal/application/auth"
	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Temizlik-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Temizlik-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Temizlik-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Temizlik-api/internal/interfaces/http"
	"github.com/jhoicas/Temizlik-api/pkg/config"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

// @title           Temizlik API
// @version         1.0
// @description     Libro de personal, cobranzas y caja diaria.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.Ledger.Timezone).
		Msg("iniciando aplicación")

	loc, err := cfg.Ledger.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del libro")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	personnelRepo := postgres.NewPersonnelRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	collectionRepo := postgres.NewCollectionRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clock := appledger.SystemClock{Loc: loc}

	var ledgerMetrics appledger.Metrics = appledger.NopMetrics{}
	var promMetrics *metrics.LedgerMetrics
	if cfg.Metrics.Enabled {
		promMetrics = metrics.NewLedgerMetrics(true)
		ledgerMetrics = promMetrics
	}

	ledgerUC := appledger.NewPersonnelLedgerUseCase(
		personnelRepo, payrollRepo, workOrderRepo,
		infraxlsx.NewExcelizeGenerator(), clock, ledgerMetrics, log,
	)
	receivablesUC := appledger.NewReceivablesUseCase(
		customerRepo, workOrderRepo, collectionRepo,
		clock, ledgerMetrics, log, cfg.Ledger.PageSize,
	)
	registerUC := appledger.NewCashRegisterUseCase(
		collectionRepo, expenseRepo, payrollRepo,
		infrapdf.NewMarotoRegisterGenerator(cfg.App.Name), clock, ledgerMetrics, log,
	)
	payrollUC := appledger.NewPayrollUseCase(txRunner, personnelRepo, payrollRepo, ledgerMetrics, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.DocsPath,
		Path:     "docs",
		Title:    "Temizlik API",
	}))
	// Especificación embebida en el binario, independiente de DOCS_PATH.
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	deps := httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(userRepo),
		CustomerUC:    usecase.NewCustomerUseCase(customerRepo),
		PersonnelUC:   usecase.NewPersonnelUseCase(personnelRepo),
		WorkOrderUC:   usecase.NewWorkOrderUseCase(txRunner, workOrderRepo),
		CashUC:        usecase.NewCashUseCase(collectionRepo, expenseRepo, customerRepo),
		LedgerUC:      ledgerUC,
		ReceivablesUC: receivablesUC,
		RegisterUC:    registerUC,
		PayrollUC:     payrollUC,
		JWTSecret:     cfg.JWT.Secret,
	}
	if promMetrics != nil {
		deps.MetricsHandler = promMetrics.Handler()
	}
	httpRouter.Router(app, deps)

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
