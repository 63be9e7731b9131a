package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/windowwise/internal/model"
)

// ReplaceCatalog swaps the stored catalog for products in one transaction.
// Catalog order is preserved.
func (s *SQLiteStorage) ReplaceCatalog(ctx context.Context, products []model.Product) error {
	return s.ReplaceCatalogWithProgress(ctx, products, nil)
}

// ReplaceCatalogWithProgress is ReplaceCatalog with stored called once per
// inserted row. A nil stored is ignored.
func (s *SQLiteStorage) ReplaceCatalogWithProgress(ctx context.Context, products []model.Product, stored func()) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProducts(products); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (
			position, product_id, brand, model, series, window_type, material,
			glass_type, energy_rating, features, price_low, price_high,
			u_factor, shgc, stc, warranty_years, popularity, customer_rating, extra
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range products {
		extra, err := encodeExtra(p.Extra)
		if err != nil {
			return fmt.Errorf("failed to encode extra fields for %s: %w", p.DisplayName(), err)
		}

		_, err = stmt.ExecContext(ctx,
			i, p.ID, p.Brand, p.Model, p.Series, joinTypes(p.Types()), string(p.Material),
			p.GlassType, p.EnergyRating, p.Features, p.PriceRangeLow, p.PriceRangeHigh,
			p.UFactor, p.SHGC, p.STC, p.WarrantyYears, p.PopularityScore, p.CustomerRating, extra,
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s: %w", p.DisplayName(), err)
		}
		if stored != nil {
			stored()
		}
	}

	return tx.Commit()
}

// ListProducts returns the stored catalog in import order.
func (s *SQLiteStorage) ListProducts(ctx context.Context) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.listProductsTx(ctx, s.db)
}

func (s *SQLiteStorage) listProductsTx(ctx context.Context, q queryable) ([]model.Product, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT product_id, brand, model, series, window_type, material,
		       glass_type, energy_rating, features, price_low, price_high,
		       u_factor, shgc, stc, warranty_years, popularity, customer_rating, extra
		FROM products
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := []model.Product{}
	for rows.Next() {
		var (
			p          model.Product
			windowType string
			material   string
			extra      string
		)
		if err := rows.Scan(
			&p.ID, &p.Brand, &p.Model, &p.Series, &windowType, &material,
			&p.GlassType, &p.EnergyRating, &p.Features, &p.PriceRangeLow, &p.PriceRangeHigh,
			&p.UFactor, &p.SHGC, &p.STC, &p.WarrantyYears, &p.PopularityScore, &p.CustomerRating, &extra,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.SetTypes(model.ParseWindowTypes(windowType))
		p.Material = model.FrameMaterial(material)
		if p.Extra, err = decodeExtra(extra); err != nil {
			return nil, fmt.Errorf("failed to decode extra fields for %s: %w", p.DisplayName(), err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CountProducts returns how many products are stored.
func (s *SQLiteStorage) CountProducts(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// joinTypes stores every style in the window_type column, primary first.
func joinTypes(types []model.WindowType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func encodeExtra(fields []model.ExtraField) (string, error) {
	if len(fields) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeExtra(data string) ([]model.ExtraField, error) {
	if data == "" || data == "[]" {
		return nil, nil
	}
	var fields []model.ExtraField
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
