package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/arabica/internal/config"
	"github.com/example/arabica/internal/handlers"
	"github.com/example/arabica/internal/middleware"
	"github.com/example/arabica/internal/orders"
	"github.com/example/arabica/internal/services"
	"github.com/example/arabica/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mailService := services.NewMailService(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom)
	orderStore := storage.NewOrderStore(db)
	orderService := orders.NewService(orderStore, mailService, cfg.OpsEmail)

	authHandler := handlers.NewAuthHandler(db, cfg)
	menuHandler := handlers.NewMenuHandler(db)
	branchHandler := handlers.NewBranchHandler(db)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(db, orderService)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public storefront
	api.Get("/menu", menuHandler.ListMenu)
	api.Get("/menu/items/:id", menuHandler.GetItem)
	api.Get("/branches", branchHandler.ListBranches)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/orders/:id/cancel", orderHandler.CancelOrder)

	// Admin back office
	admin := protected.Group("/admin", middleware.AdminMiddleware(db))

	admin.Get("/stats", adminHandler.DashboardStats)
	admin.Get("/orders", adminHandler.ListAllOrders)
	admin.Get("/orders/recent", adminHandler.RecentOrders)
	admin.Patch("/orders/:id/status", adminHandler.UpdateOrderStatus)

	admin.Post("/menu/categories", menuHandler.CreateCategory)
	admin.Put("/menu/categories/:id", menuHandler.UpdateCategory)
	admin.Delete("/menu/categories/:id", menuHandler.DeleteCategory)
	admin.Post("/menu/items", menuHandler.CreateItem)
	admin.Put("/menu/items/:id", menuHandler.UpdateItem)
	admin.Delete("/menu/items/:id", menuHandler.DeleteItem)

	admin.Post("/branches", branchHandler.CreateBranch)
	admin.Put("/branches/:id", branchHandler.UpdateBranch)
	admin.Delete("/branches/:id", branchHandler.DeleteBranch)
}
