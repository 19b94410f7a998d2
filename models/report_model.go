package models

import "time"

// ProductSummary is the per-product aggregation row: count of tracked days,
// mean and standard deviation of the initial and final counts, and the total
// and mean variance, grouped by (product, category).
type ProductSummary struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	DaysTracked int     `json:"days_tracked"`
	AvgInitial  float64 `json:"avg_initial"`
	StdInitial  float64 `json:"std_initial"`
	AvgFinal    float64 `json:"avg_final"`
	StdFinal    float64 `json:"std_final"`
	TotalChange int     `json:"total_change"`
	AvgChange   float64 `json:"avg_change"`
}

// TimeBucketPoint is the mean final count for one product in one time bucket
// (month, quarter or season).
type TimeBucketPoint struct {
	Bucket      string  `json:"bucket"`
	ProductName string  `json:"product_name"`
	AvgFinal    float64 `json:"avg_final"`
}

// DistributionEntry is the total variance contributed by one product, used
// for share-of-change views.
type DistributionEntry struct {
	ProductName string `json:"product_name"`
	TotalChange int    `json:"total_change"`
}

// GrowthPoint is the month-over-month percentage change of the total initial
// count. The first month of a dataset has no prior value and is never
// reported; a zero prior value yields PctChange 0 rather than infinity.
type GrowthPoint struct {
	MonthYear string  `json:"month_year"`
	PctChange float64 `json:"pct_change"`
	Positive  bool    `json:"positive"`
}

// BusiestDay is one (date, product) pair ranked by transaction count.
type BusiestDay struct {
	Date         time.Time `json:"date"`
	ProductName  string    `json:"product_name"`
	Transactions int       `json:"transaction_count"`
}

// Overview carries the dashboard KPI row.
type Overview struct {
	ProductCount       int     `json:"product_count"`
	TotalDays          int     `json:"total_days"`
	AvgDailyChange     float64 `json:"avg_daily_change"`
	TotalNetChange     int     `json:"total_net_change"`
	TotalInStock       int     `json:"total_instock"`
	InventoryChangePct float64 `json:"inventory_change_pct"`
}

// MovementSummary aggregates realtime movements inside a time window.
type MovementSummary struct {
	TotalMovements int `json:"total_movements"`
	IncomingCount  int `json:"incoming_count"`
	OutgoingCount  int `json:"outgoing_count"`
	IncomingItems  int `json:"incoming_items"`
	OutgoingItems  int `json:"outgoing_items"`
	NetChange      int `json:"net_change"`
}
