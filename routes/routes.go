package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/handlers"
	"app/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Get("/health", h.HandleHealth)

	// --- Authentication ---
	auth := api.Group("/auth")
	auth.Post("/login", h.HandleLogin)

	// --- Summary tables for charting ---
	summary := api.Group("/summary")
	summary.Get("/overview", h.HandleGetOverview)
	summary.Get("/products", h.HandleGetProductSummaries)
	summary.Get("/timeseries", h.HandleGetTimeSeries)
	summary.Get("/distribution", h.HandleGetDistribution)
	summary.Get("/growth", h.HandleGetGrowth)
	summary.Get("/busiest-days", h.HandleGetBusiestDays)

	// --- Raw filtered rows (table/export) ---
	api.Get("/records", h.HandleGetRecords)

	// --- Realtime movement feed ---
	movements := api.Group("/movements")
	movements.Get("/recent", h.HandleGetRecentMovements)
	movements.Get("/summary", h.HandleGetMovementSummary)
	api.Get("/stock-levels", h.HandleGetStockLevels)

	// --- AI assistant ---
	chat := api.Group("/chat", middleware.JWT(h.JWTSecret))
	chat.Post("/", h.HandleChat)
	chat.Get("/history", h.HandleGetChatHistory)
}
