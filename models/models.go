package models

import "time"

// Product is a tracked product. product_name is the primary key in the store.
type Product struct {
	Name         string `json:"product_name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"instock_items"`
}

// InventoryRecord is one day-level inventory row: the counted stock at the
// start and end of a calendar day for one product. For a given product each
// date has at most one record.
type InventoryRecord struct {
	ID           int       `json:"id"`
	ProductName  string    `json:"product_name"`
	Date         time.Time `json:"date"`
	InitialCount int       `json:"initial_count"`
	FinalCount   int       `json:"final_count"`
}

// Variance is the day's net change: final count minus initial count.
func (r InventoryRecord) Variance() int {
	return r.FinalCount - r.InitialCount
}

// MovementType classifies a realtime inventory movement.
type MovementType string

const (
	MovementIncoming MovementType = "incoming"
	MovementOutgoing MovementType = "outgoing"
)

// MovementEvent is one realtime stock movement. Quantity is positive for
// both directions; the type carries the sign. Historical rows written out of
// order may still drive a product negative, so consumers must not assume
// non-negative running stock.
type MovementEvent struct {
	ID          int          `json:"movement_id"`
	ProductName string       `json:"product_name"`
	Category    string       `json:"category"`
	Timestamp   time.Time    `json:"timestamp"`
	Type        MovementType `json:"movement_type"`
	Quantity    int          `json:"quantity"`
}

// InventoryDay is an inventory record joined with its product's category and
// the derived time fields. It is the unit the aggregation engine and the
// filter composer operate on; it is never written back to the store.
type InventoryDay struct {
	InventoryRecord
	Category  string `json:"category"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	MonthYear string `json:"month_year"` // "2006-01" bucket key
	Quarter   int    `json:"quarter"`
	Season    string `json:"season"`
	DayOfWeek string `json:"day_of_week"`
	ISOWeek   int    `json:"week_number"`
}

// Granularity selects the time bucket used for trend aggregation.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularitySeason  Granularity = "season"
)

// Sentinel values meaning "no restriction" for their filter predicate.
const (
	YearAll     = 0
	CategoryAll = "all"
)

// FilterSelection is the active product/year/category/granularity restriction
// shared by the chart endpoints and the conversation scope. Zero values are
// the identity: an empty product set, YearAll and CategoryAll leave the
// dataset untouched.
type FilterSelection struct {
	Products    []string    `json:"products"`
	Year        int         `json:"year"`
	Category    string      `json:"category"`
	Granularity Granularity `json:"granularity"`
}

// ProductSet returns the selected products as a membership set. An empty
// selection returns nil, meaning every product passes.
func (f FilterSelection) ProductSet() map[string]struct{} {
	if len(f.Products) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(f.Products))
	for _, name := range f.Products {
		set[name] = struct{}{}
	}
	return set
}
