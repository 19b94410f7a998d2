package analytics

import (
	"context"

	"app/models"
)

// InventorySource is the slice of the store the provider needs.
type InventorySource interface {
	LoadInventory(ctx context.Context) ([]models.InventoryDay, error)
	LoadProducts(ctx context.Context) ([]models.Product, error)
}

// Provider is the store-backed data access object handed to the components
// that need the enriched dataset. It reloads from the store on every call;
// there is no cross-request cache, so a rebuilt view is always consistent
// with the store at read time.
type Provider struct {
	Source InventorySource
}

// Dataset loads the joined inventory and derives the time fields.
func (p *Provider) Dataset(ctx context.Context) ([]models.InventoryDay, error) {
	days, err := p.Source.LoadInventory(ctx)
	if err != nil {
		return nil, err
	}
	return Derive(days), nil
}

// Products passes the product list through from the store.
func (p *Provider) Products(ctx context.Context) ([]models.Product, error) {
	return p.Source.LoadProducts(ctx)
}
