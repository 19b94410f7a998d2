package analytics

import (
	"math"
	"sort"
	"time"

	"app/models"
)

// The engine computes summary tables over an enriched, already-filtered
// dataset. Every operation returns an explicit empty result for an empty
// input. Means and percentages are returned unrounded; rounding to two
// decimals happens at the presentation boundary so it cannot compound
// across chained aggregations.

// ProductSummaries groups the dataset by (product, category) and reports
// days tracked, mean/stddev of the initial and final counts, and the total
// and mean variance. Rows are sorted by product name.
func ProductSummaries(days []models.InventoryDay) []models.ProductSummary {
	if len(days) == 0 {
		return nil
	}

	type key struct{ product, category string }
	groups := make(map[key][]models.InventoryDay)
	for _, d := range days {
		k := key{d.ProductName, d.Category}
		groups[k] = append(groups[k], d)
	}

	summaries := make([]models.ProductSummary, 0, len(groups))
	for k, group := range groups {
		initials := make([]float64, len(group))
		finals := make([]float64, len(group))
		totalChange := 0
		for i, d := range group {
			initials[i] = float64(d.InitialCount)
			finals[i] = float64(d.FinalCount)
			totalChange += d.Variance()
		}
		summaries = append(summaries, models.ProductSummary{
			ProductName: k.product,
			Category:    k.category,
			DaysTracked: len(group),
			AvgInitial:  mean(initials),
			StdInitial:  stddev(initials),
			AvgFinal:    mean(finals),
			StdFinal:    stddev(finals),
			TotalChange: totalChange,
			AvgChange:   float64(totalChange) / float64(len(group)),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ProductName < summaries[j].ProductName
	})
	return summaries
}

// TimeBuckets reports the mean final count per (bucket, product), where the
// bucket is the month, quarter or season of the record. Points are ordered
// chronologically by bucket, then by product name.
func TimeBuckets(days []models.InventoryDay, granularity models.Granularity) []models.TimeBucketPoint {
	if len(days) == 0 {
		return nil
	}

	type key struct{ bucket, product string }
	sums := make(map[key]float64)
	counts := make(map[key]int)
	for _, d := range days {
		k := key{bucketOf(d, granularity), d.ProductName}
		sums[k] += float64(d.FinalCount)
		counts[k]++
	}

	points := make([]models.TimeBucketPoint, 0, len(sums))
	for k, sum := range sums {
		points = append(points, models.TimeBucketPoint{
			Bucket:      k.bucket,
			ProductName: k.product,
			AvgFinal:    sum / float64(counts[k]),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		bi, bj := points[i].Bucket, points[j].Bucket
		if bi != bj {
			if granularity == models.GranularitySeason {
				return seasonOrder[bi] < seasonOrder[bj]
			}
			return bi < bj
		}
		return points[i].ProductName < points[j].ProductName
	})
	return points
}

func bucketOf(d models.InventoryDay, granularity models.Granularity) string {
	switch granularity {
	case models.GranularityQuarter:
		return "Q" + string(rune('0'+d.Quarter))
	case models.GranularitySeason:
		return d.Season
	default:
		return d.MonthYear
	}
}

// Distribution reports the total variance per product, for share-of-change
// views. Entries are sorted by product name.
func Distribution(days []models.InventoryDay) []models.DistributionEntry {
	if len(days) == 0 {
		return nil
	}

	totals := make(map[string]int)
	for _, d := range days {
		totals[d.ProductName] += d.Variance()
	}

	entries := make([]models.DistributionEntry, 0, len(totals))
	for name, total := range totals {
		entries = append(entries, models.DistributionEntry{ProductName: name, TotalChange: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ProductName < entries[j].ProductName
	})
	return entries
}

// Growth reports the month-over-month percentage change of the total initial
// count. The first month has no prior value and is dropped. A zero prior
// value yields 0 rather than infinity.
func Growth(days []models.InventoryDay) []models.GrowthPoint {
	if len(days) == 0 {
		return nil
	}

	totals := make(map[string]int)
	for _, d := range days {
		totals[d.MonthYear] += d.InitialCount
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)

	var points []models.GrowthPoint
	for i := 1; i < len(months); i++ {
		current := totals[months[i]]
		previous := totals[months[i-1]]
		pct := 0.0
		if previous != 0 {
			pct = float64(current-previous) / float64(previous) * 100
		}
		points = append(points, models.GrowthPoint{
			MonthYear: months[i],
			PctChange: pct,
			Positive:  pct >= 0,
		})
	}
	return points
}

// BusiestDays ranks (date, product) pairs by transaction count and returns
// the top 10, ties broken by descending date. With the day-level model a
// pair holds at most one record, so fewer than 10 rows come back whenever
// fewer than 10 pairs saw any transaction.
func BusiestDays(days []models.InventoryDay) []models.BusiestDay {
	if len(days) == 0 {
		return nil
	}

	type key struct {
		date    time.Time
		product string
	}
	counts := make(map[key]int)
	for _, d := range days {
		counts[key{d.Date, d.ProductName}]++
	}

	ranked := make([]models.BusiestDay, 0, len(counts))
	for k, n := range counts {
		ranked = append(ranked, models.BusiestDay{Date: k.date, ProductName: k.product, Transactions: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Transactions != ranked[j].Transactions {
			return ranked[i].Transactions > ranked[j].Transactions
		}
		if !ranked[i].Date.Equal(ranked[j].Date) {
			return ranked[i].Date.After(ranked[j].Date)
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})

	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	return ranked
}

// Overview computes the KPI row: product and day counts, average daily net
// change, total net change, total in-stock items, and the percentage change
// between the latest and the previous day's total final counts. A missing or
// zero previous day yields 0.
func Overview(days []models.InventoryDay, products []models.Product) models.Overview {
	var o models.Overview
	for _, p := range products {
		o.TotalInStock += p.CurrentStock
	}
	if len(days) == 0 {
		return o
	}

	productSet := make(map[string]struct{})
	dailyChange := make(map[time.Time]int)
	var latest time.Time
	for _, d := range days {
		productSet[d.ProductName] = struct{}{}
		dailyChange[d.Date] += d.Variance()
		o.TotalNetChange += d.Variance()
		if d.Date.After(latest) {
			latest = d.Date
		}
	}
	o.ProductCount = len(productSet)
	o.TotalDays = len(dailyChange)

	total := 0
	for _, change := range dailyChange {
		total += change
	}
	o.AvgDailyChange = float64(total) / float64(len(dailyChange))

	previous := latest.AddDate(0, 0, -1)
	currentSum, previousSum := 0, 0
	for _, d := range days {
		if d.Date.Equal(latest) {
			currentSum += d.FinalCount
		}
		if d.Date.Equal(previous) {
			previousSum += d.FinalCount
		}
	}
	if previousSum != 0 {
		o.InventoryChangePct = float64(currentSum-previousSum) / float64(previousSum) * 100
	}
	return o
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample standard deviation; a single observation has no
// spread and reports 0.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
