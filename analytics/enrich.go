package analytics

import (
	"time"

	"app/models"
)

// seasonOrder is the fixed display order for seasonal buckets.
var seasonOrder = map[string]int{
	"Winter": 0,
	"Spring": 1,
	"Summer": 2,
	"Fall":   3,
}

// SeasonOf maps a month to its season with a fixed calendar mapping,
// independent of hemisphere: Mar-May Spring, Jun-Aug Summer, Sep-Nov Fall,
// everything else Winter.
func SeasonOf(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return "Spring"
	case month >= time.June && month <= time.August:
		return "Summer"
	case month >= time.September && month <= time.November:
		return "Fall"
	default:
		return "Winter"
	}
}

// Derive fills in the derived time fields of every day record and returns a
// new slice. The input is never mutated; re-deriving the same rows always
// yields the same result.
func Derive(days []models.InventoryDay) []models.InventoryDay {
	out := make([]models.InventoryDay, len(days))
	for i, d := range days {
		_, isoWeek := d.Date.ISOWeek()
		d.Year = d.Date.Year()
		d.Month = int(d.Date.Month())
		d.MonthName = d.Date.Month().String()
		d.MonthYear = d.Date.Format("2006-01")
		d.Quarter = (int(d.Date.Month())-1)/3 + 1
		d.Season = SeasonOf(d.Date.Month())
		d.DayOfWeek = d.Date.Weekday().String()
		d.ISOWeek = isoWeek
		out[i] = d
	}
	return out
}
