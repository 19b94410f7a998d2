package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"app/database"
	"app/models"
)

// ErrSchemaUnavailable reports a store with no tables at all. The assembler
// still returns the explicit "no data available" document so the caller has
// something well-defined to show or to send.
var ErrSchemaUnavailable = errors.New("store schema unavailable")

const noDataDocument = "No data available: the store has no tables to describe."

// Assembler builds the context document fed to the generative model: schema
// preamble, a shape summary of the currently filtered view, and the labeled
// results of the full query catalog, concatenated under a character budget.
type Assembler struct {
	Store Querier
	// CharBudget caps the document length. Catalog blocks that would push
	// the document past the budget are dropped, tail first. Zero means
	// unbounded.
	CharBudget int
	Log        zerolog.Logger
}

// Assemble renders the context document. The shape summary describes the
// filtered in-memory view; the catalog blocks always describe the whole
// store. Only a missing schema is a hard failure, and even then the returned
// document states so explicitly.
func (a *Assembler) Assemble(ctx context.Context, view []models.InventoryDay) (string, error) {
	schema, err := a.Store.Schema(ctx)
	if err != nil {
		a.Log.Error().Err(err).Msg("schema introspection failed")
		return noDataDocument, ErrSchemaUnavailable
	}
	if len(schema) == 0 {
		return noDataDocument, ErrSchemaUnavailable
	}

	var b strings.Builder
	b.WriteString(schemaPreamble(schema))
	b.WriteString("\n\n")
	b.WriteString(shapeSummary(view))

	budget := a.CharBudget
	for _, result := range RunCatalog(ctx, a.Store, a.Log) {
		block, err := formatBlock(result)
		if err != nil {
			a.Log.Error().Err(err).Str("query", result.Name).Msg("serializing catalog block failed, omitting")
			continue
		}
		if budget > 0 && b.Len()+len(block) > budget {
			a.Log.Debug().Str("query", result.Name).Int("budget", budget).Msg("context budget reached, dropping tail blocks")
			break
		}
		b.WriteString(block)
	}

	return b.String(), nil
}

func schemaPreamble(schema database.Schema) string {
	names := make([]string, len(schema))
	for i, t := range schema {
		names[i] = t.Name
	}
	var b strings.Builder
	b.WriteString("Database tables: " + strings.Join(names, ", ") + ". ")
	for _, t := range schema {
		fmt.Fprintf(&b, "Table '%s' has columns: %s. ", t.Name, strings.Join(t.Columns, ", "))
	}
	return strings.TrimSpace(b.String())
}

// shapeSummary describes the filtered view: product and category spread,
// date range and a short sample of product names.
func shapeSummary(view []models.InventoryDay) string {
	if len(view) == 0 {
		return "Dataset is empty for the current filter selection."
	}

	var products, categories []string
	seenProduct := make(map[string]struct{})
	seenCategory := make(map[string]struct{})
	minDate, maxDate := view[0].Date, view[0].Date
	for _, d := range view {
		if _, ok := seenProduct[d.ProductName]; !ok {
			seenProduct[d.ProductName] = struct{}{}
			products = append(products, d.ProductName)
		}
		if _, ok := seenCategory[d.Category]; !ok {
			seenCategory[d.Category] = struct{}{}
			categories = append(categories, d.Category)
		}
		if d.Date.Before(minDate) {
			minDate = d.Date
		}
		if d.Date.After(maxDate) {
			maxDate = d.Date
		}
	}

	sample := products
	if len(sample) > 5 {
		sample = sample[:5]
	}

	return fmt.Sprintf(
		"Dataset has %d products in categories: %s. Date range: %s to %s. Products include: %s",
		len(products),
		strings.Join(categories, ", "),
		minDate.Format("2006-01-02"),
		maxDate.Format("2006-01-02"),
		strings.Join(sample, ", "),
	)
}

// formatBlock renders one catalog result as a labeled block of JSON rows.
// The serialization is stable (keys in declared column order), so a block
// re-parses to exactly the rows that produced it.
func formatBlock(result CatalogResult) (string, error) {
	payload, err := json.MarshalIndent(result.Rows, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\n\n[%s]\n%s", result.Name, payload), nil
}
