package ai

import (
	"context"

	"github.com/rs/zerolog"

	"app/database"
)

// Querier is the slice of the store the AI layer needs: arbitrary read-only
// queries plus schema introspection.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]database.Row, error)
	Schema(ctx context.Context) (database.Schema, error)
}

// CatalogQuery is one named aggregation query of the fixed battery run to
// build conversational context.
type CatalogQuery struct {
	Name string
	SQL  string
}

// CatalogResult is the rows one catalog query produced.
type CatalogResult struct {
	Name string
	Rows []database.Row
}

// Catalog is the fixed, ordered battery of context queries. They run against
// the unfiltered store on every submission, in this order, so the assistant
// can reference the whole history even when the visual filter is narrower.
// The order doubles as the truncation priority: later blocks are dropped
// first when the context document hits its budget.
var Catalog = []CatalogQuery{
	{
		Name: "max_initial_count",
		SQL: `SELECT product_name, initial_count AS max_initial_count
              FROM inventory ORDER BY initial_count DESC, product_name LIMIT 1`,
	},
	{
		Name: "min_initial_count",
		SQL: `SELECT product_name, initial_count AS min_initial_count
              FROM inventory ORDER BY initial_count ASC, product_name LIMIT 1`,
	},
	{
		Name: "max_final_count",
		SQL: `SELECT product_name, final_count AS max_final_count
              FROM inventory ORDER BY final_count DESC, product_name LIMIT 1`,
	},
	{
		Name: "min_final_count",
		SQL: `SELECT product_name, final_count AS min_final_count
              FROM inventory ORDER BY final_count ASC, product_name LIMIT 1`,
	},
	{
		Name: "avg_initial_count",
		SQL: `SELECT product_name, AVG(initial_count)::float8 AS avg_initial_count
              FROM inventory GROUP BY product_name ORDER BY product_name`,
	},
	{
		Name: "avg_final_count",
		SQL: `SELECT product_name, AVG(final_count)::float8 AS avg_final_count
              FROM inventory GROUP BY product_name ORDER BY product_name`,
	},
	{
		Name: "top_products_by_change",
		SQL: `SELECT p.product_name, p.category,
                     SUM(i.final_count - i.initial_count) AS total_change
              FROM products p
              JOIN inventory i ON p.product_name = i.product_name
              GROUP BY p.product_name, p.category
              ORDER BY total_change DESC
              LIMIT 5`,
	},
	{
		Name: "category_performance",
		SQL: `SELECT p.category,
                     SUM(i.final_count - i.initial_count) AS total_change,
                     AVG(i.final_count - i.initial_count)::float8 AS avg_change
              FROM products p
              JOIN inventory i ON p.product_name = i.product_name
              GROUP BY p.category
              ORDER BY total_change DESC`,
	},
	{
		Name: "trends_over_time",
		SQL: `SELECT date, SUM(final_count - initial_count) AS daily_change
              FROM inventory
              GROUP BY date
              ORDER BY date DESC
              LIMIT 10`,
	},
	{
		Name: "product_counts_by_date",
		SQL: `SELECT product_name, date, initial_count, final_count
              FROM inventory
              ORDER BY date DESC, product_name`,
	},
}

// RunCatalog executes the full battery in order. A failing query is logged
// and its result omitted; the rest of the battery still runs. Queries that
// return zero rows are omitted from the output as well, since an empty block
// adds nothing to the context.
func RunCatalog(ctx context.Context, store Querier, log zerolog.Logger) []CatalogResult {
	var results []CatalogResult
	for _, q := range Catalog {
		rows, err := store.Query(ctx, q.SQL)
		if err != nil {
			log.Error().Err(err).Str("query", q.Name).Msg("catalog query failed, omitting block")
			continue
		}
		if len(rows) == 0 {
			continue
		}
		results = append(results, CatalogResult{Name: q.Name, Rows: rows})
	}
	return results
}
