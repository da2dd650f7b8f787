package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comfitco/luxe-store/internal/models"
)

// ListProducts returns the full catalog, newest first. The result is a
// complete replacement snapshot; callers never patch it row by row.
func ListProducts(ctx context.Context, db *sql.DB) ([]models.Product, error) {
	query := `
		SELECT id, name, price, image, category, created_at
		FROM products
		ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Image,
			&product.Category,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

// CountProducts is the seeder's independent existence check.
func CountProducts(ctx context.Context, db *sql.DB) (int64, error) {
	var total int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// InsertProduct creates one catalog listing and returns the canonical row
// with the store-assigned id and timestamp.
func InsertProduct(ctx context.Context, db *sql.DB, name string, price decimal.Decimal, image string, category models.Category) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (name, price, image, category, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, name, price, image, category, created_at`

	err := db.QueryRowContext(ctx, query, name, price, image, string(category)).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Image,
		&product.Category,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes one listing by id. Deleting an id that is already
// gone is a silent no-op, not an error.
func DeleteProduct(ctx context.Context, db *sql.DB, id uuid.UUID) error {
	_, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
