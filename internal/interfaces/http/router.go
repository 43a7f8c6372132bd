package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jawharapos/pos-api/internal/application/analytics"
	"github.com/jawharapos/pos-api/internal/application/auth"
	"github.com/jawharapos/pos-api/internal/application/billing"
	"github.com/jawharapos/pos-api/internal/application/sales"
	"github.com/jawharapos/pos-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SettingsUC  *usecase.SettingsUseCase
	SaleUC      *sales.SaleUseCase
	DashboardUC *analytics.DashboardUseCase
	InvoiceUC   *billing.InvoiceUseCase
	ReceiptUC   *billing.ReceiptUseCase
	JWTSecret   string
}

// Router registers the API routes. The paths mirror what the dashboard
// client calls; only /user/createUser and /user/login are public.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (public)
	user := app.Group("/user")
	authHandler := NewAuthHandler(deps.AuthUC)
	user.Post("/createUser", authHandler.Signup)
	user.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/getAll", productHandler.List)
	products.Post("/create", productHandler.Create)
	products.Patch("/update/:id", productHandler.Update)
	products.Delete("/delete/:id", productHandler.Delete)

	salesGroup := protected.Group("/sale")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.DashboardUC)
	salesGroup.Get("/getAll", saleHandler.List)
	salesGroup.Post("/create", saleHandler.Create)
	salesGroup.Get("/stats", saleHandler.Stats)
	salesGroup.Get("/daily-revenue", saleHandler.DailyRevenue)
	salesGroup.Get("/monthly-revenue-sales", saleHandler.MonthlyRevenueSales)

	invoices := protected.Group("/invoice")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ReceiptUC)
	invoices.Get("/getAll", invoiceHandler.List)
	invoices.Get("/getById/:id", invoiceHandler.GetByID)
	invoices.Get("/receipt/:id", invoiceHandler.Receipt)
	invoices.Post("/create", invoiceHandler.Create)
	invoices.Patch("/update/:id", invoiceHandler.Update)
	invoices.Delete("/delete/:id", invoiceHandler.Delete)

	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/get", settingsHandler.Get)
	settings.Patch("/update", settingsHandler.Update)
}
