package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"app/ai"
	"app/analytics"
	"app/models"
)

// MovementStore is the slice of the store the realtime endpoints need.
type MovementStore interface {
	LoadMovements(ctx context.Context, window time.Duration) ([]models.MovementEvent, error)
	Ping(ctx context.Context) error
}

// Handler carries the dependencies of every endpoint. It is built once in
// main and registered by routes.SetupRoutes.
type Handler struct {
	Data      *analytics.Provider
	Movements MovementStore
	Chat      *ai.Conversation
	Log       zerolog.Logger

	JWTSecret      []byte
	PasswordHash   string
	MovementWindow time.Duration
}

// HandleHealth checks the store connection.
// GET /api/v1/health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if err := h.Movements.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Database ping failed"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// parseFilter reads the filter selection from the query string. Malformed
// year or category values degrade to their "all" sentinel; they are never an
// error for the caller.
func parseFilter(c *fiber.Ctx) models.FilterSelection {
	sel := models.FilterSelection{
		Year:        models.YearAll,
		Category:    models.CategoryAll,
		Granularity: models.GranularityMonth,
	}

	if products := c.Query("products"); products != "" {
		for _, name := range strings.Split(products, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sel.Products = append(sel.Products, name)
			}
		}
	}

	if year := c.Query("year"); year != "" && year != "all" {
		if parsed, err := strconv.Atoi(year); err == nil && parsed > 0 {
			sel.Year = parsed
		}
	}

	if category := c.Query("category"); category != "" {
		sel.Category = category
	}

	switch models.Granularity(c.Query("granularity")) {
	case models.GranularityQuarter:
		sel.Granularity = models.GranularityQuarter
	case models.GranularitySeason:
		sel.Granularity = models.GranularitySeason
	}

	return sel
}

// filteredDataset loads the enriched dataset and applies the selection.
func (h *Handler) filteredDataset(c *fiber.Ctx) ([]models.InventoryDay, models.FilterSelection, error) {
	sel := parseFilter(c)
	dataset, err := h.Data.Dataset(c.Context())
	if err != nil {
		return nil, sel, err
	}
	return analytics.Apply(dataset, sel), sel, nil
}

func (h *Handler) storeError(c *fiber.Ctx, err error) error {
	h.Log.Error().Err(err).Str("path", c.Path()).Msg("store read failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load inventory data"})
}
