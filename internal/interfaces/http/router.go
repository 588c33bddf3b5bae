package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/analytics"
	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/export"
	"github.com/jhoicas/pedidos-api/internal/application/message"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	OrderUC     *order.UseCase
	AnalyticsUC *analytics.UseCase
	MessageUC   *message.UseCase
	ExportUC    *export.UseCase
	PriceRepo   repository.PriceRepository
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/logout", authHandler.Logout)

	// Catálogo (portada)
	catalogHandler := NewCatalogHandler(deps.PriceRepo, deps.Log)
	protected.Get("/", catalogHandler.Index)

	// Pedidos
	orders := protected.Group("/order/manage")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Log)
	orders.Get("/", orderHandler.List)
	orders.Post("/submit", orderHandler.Submit)
	orders.Post("/cancel", orderHandler.Cancel)
	orders.Post("/create", RequireRole(entity.RoleAdmin), orderHandler.Create)
	orders.Post("/update", RequireRole(entity.RoleAdmin), orderHandler.Update)
	orders.Post("/delete", RequireRole(entity.RoleAdmin), orderHandler.Delete)

	// Analítica (solo admin; el caso de uso revalida el rol)
	analyse := protected.Group("/analyse", RequireRole(entity.RoleAdmin))
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.Log)
	analyse.Get("/", analyticsHandler.Dashboard)
	analyse.Get("/weekly", analyticsHandler.Weekly)
	analyse.Get("/onemonth", analyticsHandler.OneMonth)
	analyse.Get("/monthly", analyticsHandler.Monthly)
	analyse.Get("/stock_sell", analyticsHandler.StockSell)

	// Mensajes
	messages := protected.Group("/message")
	messageHandler := NewMessageHandler(deps.MessageUC, deps.Log)
	messages.Get("/", messageHandler.List)
	messages.Post("/submit", messageHandler.Submit)
	messages.Get("/receive", RequireRole(entity.RoleAdmin), messageHandler.Receive)

	// Exportación del listado de pedidos
	exportHandler := NewExportHandler(deps.ExportUC, deps.Log)
	protected.Get("/order/export", exportHandler.CSV)
	protected.Get("/transform/order", exportHandler.CSV)
	protected.Get("/transform/order/pdf", exportHandler.PDF)
}
