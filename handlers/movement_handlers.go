package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
)

// movementWindow resolves the lookback window from the query string, falling
// back to the configured default on absence or nonsense.
func (h *Handler) movementWindow(c *fiber.Ctx) time.Duration {
	if raw := c.Query("window"); raw != "" {
		if window, err := time.ParseDuration(raw); err == nil && window > 0 {
			return window
		}
	}
	return h.MovementWindow
}

// HandleGetRecentMovements returns the movements inside the window, newest
// first.
// GET /api/v1/movements/recent?window=30m
func (h *Handler) HandleGetRecentMovements(c *fiber.Ctx) error {
	events, err := h.Movements.LoadMovements(c.Context(), h.movementWindow(c))
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": events})
}

// HandleGetMovementSummary returns the aggregated movement metrics for the
// window. An empty window yields explicit zeros.
// GET /api/v1/movements/summary?window=30m
func (h *Handler) HandleGetMovementSummary(c *fiber.Ctx) error {
	events, err := h.Movements.LoadMovements(c.Context(), h.movementWindow(c))
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": analytics.SummarizeMovements(events)})
}

// HandleGetStockLevels returns every product with its current stock.
// GET /api/v1/stock-levels
func (h *Handler) HandleGetStockLevels(c *fiber.Ctx) error {
	products, err := h.Data.Products(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": products})
}
