package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Temizlik-api/internal/application/auth"
	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/application/usecase"
	"github.com/jhoicas/Temizlik-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CustomerUC    *usecase.CustomerUseCase
	PersonnelUC   *usecase.PersonnelUseCase
	WorkOrderUC   *usecase.WorkOrderUseCase
	CashUC        *usecase.CashUseCase
	LedgerUC      *appledger.PersonnelLedgerUseCase
	ReceivablesUC *appledger.ReceivablesUseCase
	RegisterUC    *appledger.CashRegisterUseCase
	PayrollUC     *appledger.PayrollUseCase
	JWTSecret     string
	// MetricsHandler se monta en /metrics si no es nil.
	MetricsHandler http.Handler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.ReceivablesUC, deps.RegisterUC)

	// Auth (login público; alta de usuarios solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	api.Get("/payment-methods", ledgerHandler.PaymentMethods)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	privileged := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Motores de lectura
	ledgerGroup := protected.Group("/ledger")
	ledgerGroup.Get("/personnel", ledgerHandler.PersonnelLedger)
	ledgerGroup.Get("/personnel/export", ledgerHandler.ExportPersonnelLedger)
	ledgerGroup.Get("/receivables", ledgerHandler.Receivables)
	ledgerGroup.Get("/customers/:id/balance", ledgerHandler.CustomerBalance)
	ledgerGroup.Get("/register", ledgerHandler.Register)
	ledgerGroup.Get("/register/pdf", ledgerHandler.RegisterPDF)

	// Nómina
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	protected.Get("/payroll", payrollHandler.History)
	protected.Put("/payroll", privileged, payrollHandler.Upsert)
	protected.Delete("/payroll/:id", privileged, payrollHandler.Delete)

	// Personal
	personnel := protected.Group("/personnel")
	personnelHandler := NewPersonnelHandler(deps.PersonnelUC)
	personnel.Get("/", personnelHandler.List)
	personnel.Get("/:id", personnelHandler.GetByID)
	personnel.Post("/", privileged, personnelHandler.Create)
	personnel.Put("/:id", privileged, personnelHandler.Update)
	personnel.Delete("/:id", RequireRole(entity.RoleAdmin), personnelHandler.Delete)
	personnel.Post("/:id/recompute-balance", RequireRole(entity.RoleAdmin), payrollHandler.Recompute)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", privileged, customerHandler.Delete)

	// Órdenes de trabajo
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)
	workOrders.Post("/:id/approve", privileged, workOrderHandler.Approve)
	workOrders.Patch("/:id/status", workOrderHandler.UpdateStatus)
	workOrders.Delete("/:id", privileged, workOrderHandler.Delete)

	// Usuarios
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.UpdateAccess)
	users.Delete("/:id", userHandler.Delete)

	// Cobros y gastos
	cashHandler := NewCashHandler(deps.CashUC)
	protected.Post("/collections", cashHandler.CreateCollection)
	protected.Get("/collections", cashHandler.ListCollections)
	protected.Delete("/collections/:id", privileged, cashHandler.DeleteCollection)
	protected.Post("/expenses", cashHandler.CreateExpense)
	protected.Get("/expenses", cashHandler.ListExpenses)
	protected.Delete("/expenses/:id", privileged, cashHandler.DeleteExpense)
}
