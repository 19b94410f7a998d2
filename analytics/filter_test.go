package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func mixedDataset() []models.InventoryDay {
	return Derive([]models.InventoryDay{
		day("Box Product", "Type B", date(2022, time.June, 1), 10, 12),
		day("Box Product", "Type B", date(2023, time.June, 1), 10, 12),
		day("Cylindrical Product", "Type A", date(2023, time.June, 1), 20, 18),
		day("Cylindrical Product", "Type A", date(2023, time.July, 4), 20, 25),
		day("Spherical Product", "Type C", date(2022, time.July, 4), 5, 5),
	})
}

func TestApplySentinelsAreIdentity(t *testing.T) {
	days := mixedDataset()

	out := Apply(days, models.FilterSelection{Year: models.YearAll, Category: models.CategoryAll})
	assert.Equal(t, days, out)

	out = Apply(days, models.FilterSelection{})
	assert.Equal(t, days, out)
}

func TestApplySingleRestrictions(t *testing.T) {
	days := mixedDataset()

	byProduct := Apply(days, models.FilterSelection{Products: []string{"Box Product"}})
	require.Len(t, byProduct, 2)
	for _, d := range byProduct {
		assert.Equal(t, "Box Product", d.ProductName)
	}

	byYear := Apply(days, models.FilterSelection{Year: 2022})
	require.Len(t, byYear, 2)
	for _, d := range byYear {
		assert.Equal(t, 2022, d.Year)
	}

	byCategory := Apply(days, models.FilterSelection{Category: "Type A"})
	require.Len(t, byCategory, 2)
	for _, d := range byCategory {
		assert.Equal(t, "Type A", d.Category)
	}
}

func TestApplyCombinedRestrictions(t *testing.T) {
	days := mixedDataset()

	out := Apply(days, models.FilterSelection{
		Products: []string{"Cylindrical Product", "Box Product"},
		Year:     2023,
		Category: "Type A",
	})
	require.Len(t, out, 2)
	for _, d := range out {
		assert.Equal(t, "Cylindrical Product", d.ProductName)
		assert.Equal(t, 2023, d.Year)
	}
}

// Applying the three restrictions one at a time, in any order, must give the
// same rows as applying them together.
func TestApplyPredicatesCommute(t *testing.T) {
	days := mixedDataset()
	sel := models.FilterSelection{
		Products: []string{"Box Product", "Cylindrical Product"},
		Year:     2023,
		Category: "Type B",
	}
	combined := Apply(days, sel)

	steps := []models.FilterSelection{
		{Products: sel.Products},
		{Year: sel.Year},
		{Category: sel.Category},
	}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		order := rng.Perm(len(steps))
		out := days
		for _, i := range order {
			out = Apply(out, steps[i])
		}
		assert.Equal(t, combined, out, "order %v", order)
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	days := mixedDataset()
	snapshot := make([]models.InventoryDay, len(days))
	copy(snapshot, days)

	_ = Apply(days, models.FilterSelection{Products: []string{"Box Product"}, Year: 2023})
	assert.Equal(t, snapshot, days)
}

func TestApplyNoMatchesReturnsEmpty(t *testing.T) {
	out := Apply(mixedDataset(), models.FilterSelection{Products: []string{"Unknown Product"}})
	assert.Empty(t, out)
	assert.NotNil(t, out)
}
