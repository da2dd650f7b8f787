package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comfitco/luxe-store/internal/models"
)

// NewOrder carries the denormalized product snapshot and the customer's
// form fields for a single order insert.
type NewOrder struct {
	ProductID    uuid.NullUUID
	ProductName  string
	ProductImage string
	ProductPrice decimal.Decimal
	CustomerName string
	MobileNumber string
	Address      string
	Size         models.Size
	Quantity     int
	Message      string
}

// ListOrders returns every order, newest first. The stored row holds
// total_price; the unit price is recovered as total_price / quantity,
// which is exact because total_price = unit price * quantity at write
// time, both at two decimal places.
func ListOrders(ctx context.Context, db *sql.DB) ([]models.Order, error) {
	query := `
		SELECT id, product_id, product_name, product_image, customer_name,
		       mobile, address, size, quantity, total_price, message, created_at
		FROM orders
		ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			order      models.Order
			totalPrice decimal.Decimal
			message    sql.NullString
		)
		err := rows.Scan(
			&order.ID,
			&order.ProductID,
			&order.ProductName,
			&order.ProductImage,
			&order.CustomerName,
			&order.MobileNumber,
			&order.Address,
			&order.Size,
			&order.Quantity,
			&totalPrice,
			&message,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}

		order.ProductPrice = totalPrice.DivRound(decimal.NewFromInt(int64(order.Quantity)), 2)
		order.Message = message.String
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// InsertOrder creates one order row, storing total_price = unit price *
// quantity, and returns the canonical row.
func InsertOrder(ctx context.Context, db *sql.DB, req NewOrder) (*models.Order, error) {
	totalPrice := req.ProductPrice.Mul(decimal.NewFromInt(int64(req.Quantity))).Round(2)

	order := &models.Order{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductImage: req.ProductImage,
		ProductPrice: req.ProductPrice,
		CustomerName: req.CustomerName,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
		Size:         req.Size,
		Quantity:     req.Quantity,
		Message:      req.Message,
	}

	query := `
		INSERT INTO orders (product_id, product_name, product_image, customer_name,
		                    mobile, address, size, quantity, total_price, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at`

	err := db.QueryRowContext(ctx, query,
		req.ProductID,
		req.ProductName,
		req.ProductImage,
		req.CustomerName,
		req.MobileNumber,
		req.Address,
		string(req.Size),
		req.Quantity,
		totalPrice,
		nullableText(req.Message),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	return order, nil
}

func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
