package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/utils"
)

// HandleGetOverview returns the KPI row for the current filter selection.
// GET /api/v1/summary/overview
func (h *Handler) HandleGetOverview(c *fiber.Ctx) error {
	view, _, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}
	products, err := h.Data.Products(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}

	overview := analytics.Overview(view, products)
	overview.AvgDailyChange = utils.Round2(overview.AvgDailyChange)
	overview.InventoryChangePct = utils.Round2(overview.InventoryChangePct)
	return c.JSON(fiber.Map{"status": "success", "data": overview})
}

// HandleGetProductSummaries returns the per-product aggregation rows.
// GET /api/v1/summary/products
func (h *Handler) HandleGetProductSummaries(c *fiber.Ctx) error {
	view, _, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}

	summaries := analytics.ProductSummaries(view)
	for i := range summaries {
		summaries[i].AvgInitial = utils.Round2(summaries[i].AvgInitial)
		summaries[i].StdInitial = utils.Round2(summaries[i].StdInitial)
		summaries[i].AvgFinal = utils.Round2(summaries[i].AvgFinal)
		summaries[i].StdFinal = utils.Round2(summaries[i].StdFinal)
		summaries[i].AvgChange = utils.Round2(summaries[i].AvgChange)
	}
	return c.JSON(fiber.Map{"status": "success", "data": summaries})
}

// HandleGetTimeSeries returns the mean final count per time bucket and
// product, bucketed by the requested granularity.
// GET /api/v1/summary/timeseries
func (h *Handler) HandleGetTimeSeries(c *fiber.Ctx) error {
	view, sel, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}

	points := analytics.TimeBuckets(view, sel.Granularity)
	for i := range points {
		points[i].AvgFinal = utils.Round2(points[i].AvgFinal)
	}
	return c.JSON(fiber.Map{"status": "success", "data": points})
}

// HandleGetDistribution returns the total variance per product.
// GET /api/v1/summary/distribution
func (h *Handler) HandleGetDistribution(c *fiber.Ctx) error {
	view, _, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": analytics.Distribution(view)})
}

// HandleGetGrowth returns the month-over-month growth points.
// GET /api/v1/summary/growth
func (h *Handler) HandleGetGrowth(c *fiber.Ctx) error {
	view, _, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}

	points := analytics.Growth(view)
	for i := range points {
		points[i].PctChange = utils.Round2(points[i].PctChange)
	}
	return c.JSON(fiber.Map{"status": "success", "data": points})
}

// HandleGetBusiestDays returns the top transaction days.
// GET /api/v1/summary/busiest-days
func (h *Handler) HandleGetBusiestDays(c *fiber.Ctx) error {
	view, _, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "data": analytics.BusiestDays(view)})
}
