package handlers

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/utils"
)

// HandleGetRecords returns the raw filtered rows for tabular display, either
// paginated JSON or a full CSV export with ?format=csv.
// GET /api/v1/records
func (h *Handler) HandleGetRecords(c *fiber.Ctx) error {
	view, _, err := h.filteredDataset(c)
	if err != nil {
		return h.storeError(c, err)
	}

	if c.Query("format") == "csv" {
		return h.writeRecordsCSV(c, view)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "15"))
	start, end := utils.PageBounds(len(view), page, pageSize)

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       view[start:end],
		"pagination": utils.CreatePagination(len(view), page, pageSize),
	})
}

func (h *Handler) writeRecordsCSV(c *fiber.Ctx, view []models.InventoryDay) error {
	products, err := h.Data.Products(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	instock := make(map[string]int, len(products))
	for _, p := range products {
		instock[p.Name] = p.CurrentStock
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "product_name", "category", "date", "initial_count", "final_count", "instock_items"})
	for _, d := range view {
		_ = w.Write([]string{
			strconv.Itoa(d.ID),
			d.ProductName,
			d.Category,
			d.Date.Format("2006-01-02"),
			strconv.Itoa(d.InitialCount),
			strconv.Itoa(d.FinalCount),
			strconv.Itoa(instock[d.ProductName]),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.Log.Error().Err(err).Msg("writing CSV export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory_data.csv"`)
	return c.Send(buf.Bytes())
}
