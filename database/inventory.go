package database

import (
	"context"
	"fmt"
	"time"

	"app/models"
)

// LoadProducts returns every product with its current stock level.
func (s *Store) LoadProducts(ctx context.Context) ([]models.Product, error) {
	const query = `
        SELECT product_name, category, instock_items
        FROM products
        ORDER BY product_name
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Name, &p.Category, &p.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// LoadInventory returns the full day-level inventory joined with each
// product's category, oldest first. Time fields are derived by the caller;
// the store only owns the raw rows.
func (s *Store) LoadInventory(ctx context.Context) ([]models.InventoryDay, error) {
	const query = `
        SELECT i.id, i.product_name, i.date, i.initial_count, i.final_count, p.category
        FROM inventory i
        JOIN products p ON p.product_name = i.product_name
        ORDER BY i.date, i.product_name
    `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	defer rows.Close()

	var days []models.InventoryDay
	for rows.Next() {
		var d models.InventoryDay
		if err := rows.Scan(&d.ID, &d.ProductName, &d.Date, &d.InitialCount, &d.FinalCount, &d.Category); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return days, nil
}

// LoadMovements returns the movements inside the given lookback window,
// newest first, joined with each product's category. The window is an
// explicit timestamp bound rather than a row count, so rows appended by the
// background writer between calls only widen the result, never corrupt it.
func (s *Store) LoadMovements(ctx context.Context, window time.Duration) ([]models.MovementEvent, error) {
	const query = `
        SELECT m.movement_id, m.product_name, p.category, m.timestamp, m.movement_type, m.quantity
        FROM inventory_movements m
        JOIN products p ON p.product_name = m.product_name
        WHERE m.timestamp >= $1
        ORDER BY m.timestamp DESC
    `
	since := time.Now().Add(-window)

	rows, err := s.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("load movements: %w", err)
	}
	defer rows.Close()

	var events []models.MovementEvent
	for rows.Next() {
		var e models.MovementEvent
		var movementType string
		if err := rows.Scan(&e.ID, &e.ProductName, &e.Category, &e.Timestamp, &movementType, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		e.Type = models.MovementType(movementType)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return events, nil
}
