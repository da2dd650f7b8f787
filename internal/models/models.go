package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the closed set of catalog categories. There is no "other".
type Category string

const (
	CategoryCasual    Category = "casual"
	CategoryPartyWear Category = "party-wear"
	CategoryEthnic    Category = "ethnic"
	CategoryTrendy    Category = "trendy"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryCasual, CategoryPartyWear, CategoryEthnic, CategoryTrendy}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCasual, CategoryPartyWear, CategoryEthnic, CategoryTrendy:
		return true
	}
	return false
}

// Size is the closed set of garment sizes offered at checkout.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

func Sizes() []Size {
	return []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}
}

func (s Size) Valid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	}
	return false
}

// Product is a catalog listing. The store assigns ID and CreatedAt on
// insert; there is no update path, only create and delete.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  Category        `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// Order is a customer purchase request, immutable once created. The
// product_* fields are a value snapshot taken at order time, so the order
// stays intact if the referenced product is later deleted.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.NullUUID   `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price"`
	CustomerName string          `json:"customer_name"`
	MobileNumber string          `json:"mobile_number"`
	Address      string          `json:"address"`
	Size         Size            `json:"size"`
	Quantity     int             `json:"quantity"`
	Message      string          `json:"message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Total is the payable amount, computed at display time. It is never
// stored as a separately mutable field.
func (o Order) Total() decimal.Decimal {
	return o.ProductPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}
