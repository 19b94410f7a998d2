package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/database"
	"app/models"
)

func TestAssembleEmptySchema(t *testing.T) {
	a := &Assembler{Store: &fakeStore{}, Log: zerolog.Nop()}

	doc, err := a.Assemble(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSchemaUnavailable)
	assert.Equal(t, noDataDocument, doc)
}

func TestAssembleSchemaError(t *testing.T) {
	a := &Assembler{Store: &fakeStore{schemaErr: errors.New("store offline")}, Log: zerolog.Nop()}

	doc, err := a.Assemble(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSchemaUnavailable)
	assert.Equal(t, noDataDocument, doc)
}

func TestAssembleDocumentLayout(t *testing.T) {
	store := &fakeStore{
		schema: inventorySchema(),
		query: func(string) ([]database.Row, error) {
			return []database.Row{{Columns: []string{"product_name"}, Values: []any{"Box Product"}}}, nil
		},
	}
	a := &Assembler{Store: store, Log: zerolog.Nop()}

	doc, err := a.Assemble(context.Background(), sampleDays())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "Database tables: inventory, products. "))
	assert.Contains(t, doc, "Table 'inventory' has columns: id, product_name, date, initial_count, final_count.")
	assert.Contains(t, doc, "Date range: 2023-05-01 to 2023-05-01.")

	// Every catalog block appears, labeled, in catalog order.
	last := -1
	for _, q := range Catalog {
		idx := strings.Index(doc, "\n\n["+q.Name+"]\n")
		assert.Greater(t, idx, last, "block %s out of order", q.Name)
		last = idx
	}
}

func TestAssembleBudgetDropsTailBlocks(t *testing.T) {
	store := &fakeStore{
		schema: inventorySchema(),
		query: func(string) ([]database.Row, error) {
			return []database.Row{{Columns: []string{"product_name"}, Values: []any{"Box Product"}}}, nil
		},
	}
	a := &Assembler{Store: store, Log: zerolog.Nop()}

	unbounded, err := a.Assemble(context.Background(), nil)
	require.NoError(t, err)

	cut := strings.Index(unbounded, "\n\n[min_initial_count]")
	require.Greater(t, cut, 0)

	a.CharBudget = cut + 1
	doc, err := a.Assemble(context.Background(), nil)
	require.NoError(t, err)

	assert.Contains(t, doc, "[max_initial_count]")
	assert.NotContains(t, doc, "[min_initial_count]")
	assert.NotContains(t, doc, "[product_counts_by_date]")
}

func TestShapeSummarySampleCap(t *testing.T) {
	var view []models.InventoryDay
	for i := 0; i < 7; i++ {
		view = append(view, models.InventoryDay{
			InventoryRecord: models.InventoryRecord{
				ProductName: fmt.Sprintf("Product %d", i),
				Date:        time.Date(2023, time.May, 1+i, 0, 0, 0, 0, time.UTC),
			},
			Category: "Type A",
		})
	}

	summary := shapeSummary(view)
	assert.Contains(t, summary, "Dataset has 7 products")
	assert.Contains(t, summary, "Product 4")
	assert.NotContains(t, summary, "Product 5")
	assert.Contains(t, summary, "Date range: 2023-05-01 to 2023-05-07.")
}

func TestShapeSummaryEmptyView(t *testing.T) {
	assert.Equal(t, "Dataset is empty for the current filter selection.", shapeSummary(nil))
}

// A formatted block must re-parse to exactly the rows that produced it.
func TestCatalogBlockRoundTrip(t *testing.T) {
	result := CatalogResult{
		Name: "top_products_by_change",
		Rows: []database.Row{
			{Columns: []string{"product_name", "category", "total_change"}, Values: []any{"Box Product", "Type B", 60}},
			{Columns: []string{"product_name", "category", "total_change"}, Values: []any{"Cylindrical Product", "Type A", -30}},
		},
	}

	block, err := formatBlock(result)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(block, "\n\n[top_products_by_change]\n"))

	payload := strings.TrimPrefix(block, "\n\n[top_products_by_change]\n")
	var parsed []map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "Box Product", parsed[0]["product_name"])
	assert.Equal(t, float64(60), parsed[0]["total_change"])
	assert.Equal(t, "Cylindrical Product", parsed[1]["product_name"])
	assert.Equal(t, float64(-30), parsed[1]["total_change"])
}

func TestRunCatalogSkipsFailedAndEmptyQueries(t *testing.T) {
	store := &fakeStore{
		schema: inventorySchema(),
		query: func(sql string) ([]database.Row, error) {
			switch {
			case strings.Contains(sql, "LIMIT 5"):
				return nil, errors.New("relation missing")
			case strings.Contains(sql, "GROUP BY date"):
				return nil, nil
			default:
				return []database.Row{{Columns: []string{"product_name"}, Values: []any{"Box Product"}}}, nil
			}
		},
	}

	results := RunCatalog(context.Background(), store, zerolog.Nop())
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.NotContains(t, names, "top_products_by_change")
	assert.NotContains(t, names, "trends_over_time")
	assert.Contains(t, names, "max_initial_count")
	assert.Contains(t, names, "product_counts_by_date")
}
