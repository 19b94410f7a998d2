package analytics

import "app/models"

// Apply reduces the dataset to the rows matching the selection. The three
// predicates are independent and commute; their sentinel values (empty
// product set, YearAll, CategoryAll) are the identity. The source slice is
// never mutated.
func Apply(days []models.InventoryDay, sel models.FilterSelection) []models.InventoryDay {
	productSet := sel.ProductSet()

	out := make([]models.InventoryDay, 0, len(days))
	for _, d := range days {
		if productSet != nil {
			if _, ok := productSet[d.ProductName]; !ok {
				continue
			}
		}
		if sel.Year != models.YearAll && d.Year != sel.Year {
			continue
		}
		if sel.Category != "" && sel.Category != models.CategoryAll && d.Category != sel.Category {
			continue
		}
		out = append(out, d)
	}
	return out
}
