package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/skladpro/internal/application/reports"
	"github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/application/usecase"
	"github.com/jhoicas/skladpro/internal/application/workspace"
	"github.com/jhoicas/skladpro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC *session.UseCase
	PageUC    *workspace.PageUseCase
	States    *workspace.Registry
	CatalogUC *usecase.CatalogUseCase
	GatewayUC *usecase.GatewayUseCase
	ReportsUC *reports.UseCase
	View      *View
	Cookie    CookieConfig
	Logger    *logger.Logger
}

// Router registra las páginas del panel, la API JSON y el gateway.
func Router(app *fiber.App, deps RouterDeps) {
	// Gateway ?path= (público, sin sesión, igual que el backend de datos)
	gatewayHandler := NewGatewayHandler(deps.GatewayUC)
	gateway := app.Group("/api/gateway", gatewayHandler.CORS)
	gateway.Get("/", gatewayHandler.Get)
	gateway.Post("/", gatewayHandler.Post)
	gateway.Put("/", gatewayHandler.Put)

	app.Use(SessionMiddleware(deps.SessionUC, deps.Cookie))

	// Páginas (post/redirect/get)
	ui := NewUIHandler(deps.SessionUC, deps.PageUC, deps.States, deps.CatalogUC, deps.View, deps.Cookie, deps.Logger)
	app.Get("/", ui.Index)
	app.Post("/register", ui.Register)
	app.Post("/logout", ui.Logout)

	pages := app.Group("/ui", RequireSession("/"))
	pages.Post("/tabs/:tab", ui.SelectTab)
	pages.Post("/dialogs/:dialog/close", ui.CloseDialog)
	pages.Post("/orders/dialog", RequirePermission("order", canOrder), ui.OpenOrderDialog)
	pages.Post("/orders", RequirePermission("order", canOrder), ui.SubmitOrder)
	pages.Post("/supplies/dialog", RequirePermission("supply", canSupply), ui.OpenSupplyDialog)
	pages.Post("/supplies", RequirePermission("supply", canSupply), ui.SubmitSupply)
	pages.Post("/status/dialog", RequirePermission("edit", canEdit), ui.OpenStatusDialog)
	pages.Post("/status", RequirePermission("edit", canEdit), ui.SubmitStatus)

	api := app.Group("/api")

	// Sesión (POST público)
	sessionHandler := NewSessionHandler(deps.SessionUC, deps.Cookie)
	api.Post("/session", sessionHandler.Create)
	api.Get("/session", sessionHandler.Get)
	api.Delete("/session", sessionHandler.Delete)

	// Rutas protegidas (cookie o Bearer Token)
	protected := api.Group("/", RequireSession(""))
	protected.Get("/view", ui.ViewState)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/products", catalogHandler.Products)
	protected.Get("/orders", catalogHandler.Orders)
	protected.Get("/receipts", catalogHandler.Receipts)
	protected.Get("/shipments", catalogHandler.Shipments)
	protected.Get("/zones", catalogHandler.Zones)
	protected.Get("/inventory", catalogHandler.Inventory)
	protected.Get("/contractors", catalogHandler.Contractors)
	protected.Get("/stats", catalogHandler.Stats)

	reportHandler := NewReportHandler(deps.ReportsUC)
	protected.Get("/reports", reportHandler.List)
	protected.Get("/reports/:kind", reportHandler.Get)
	protected.Get("/reports/:kind/export", reportHandler.Export)
}
