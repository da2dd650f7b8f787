package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() PlaceOrderRequest {
	return PlaceOrderRequest{
		ProductID:    "7a9d2a1e-8a94-4c8e-9f3e-0b6f6a2f4d11",
		CustomerName: "Asha",
		MobileNumber: "9876543210",
		Address:      "12 Rose Lane",
		Size:         "M",
		Quantity:     1,
	}
}

func TestPlaceOrderRequestValidation(t *testing.T) {
	require.NoError(t, Struct(validOrder()))

	tests := []struct {
		name   string
		mutate func(*PlaceOrderRequest)
	}{
		{"missing customer name", func(r *PlaceOrderRequest) { r.CustomerName = "" }},
		{"missing mobile", func(r *PlaceOrderRequest) { r.MobileNumber = "" }},
		{"missing address", func(r *PlaceOrderRequest) { r.Address = "" }},
		{"size outside set", func(r *PlaceOrderRequest) { r.Size = "XXXL" }},
		{"zero quantity", func(r *PlaceOrderRequest) { r.Quantity = 0 }},
		{"negative quantity", func(r *PlaceOrderRequest) { r.Quantity = -2 }},
		{"malformed product id", func(r *PlaceOrderRequest) { r.ProductID = "not-a-uuid" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrder()
			tt.mutate(&req)
			assert.Error(t, Struct(req))
		})
	}
}

func TestPlaceOrderMessageOptional(t *testing.T) {
	req := validOrder()
	req.Message = ""
	assert.NoError(t, Struct(req))

	req.Message = "please gift wrap"
	assert.NoError(t, Struct(req))
}

func TestAddProductRequestValidation(t *testing.T) {
	valid := AddProductRequest{
		Name:     "Linen Shirt Dress",
		Price:    1499,
		Image:    "https://example.com/linen.jpg",
		Category: "casual",
	}
	require.NoError(t, Struct(valid))

	tests := []struct {
		name   string
		mutate func(*AddProductRequest)
	}{
		{"missing name", func(r *AddProductRequest) { r.Name = "" }},
		{"zero price", func(r *AddProductRequest) { r.Price = 0 }},
		{"negative price", func(r *AddProductRequest) { r.Price = -10 }},
		{"missing image", func(r *AddProductRequest) { r.Image = "" }},
		{"category outside set", func(r *AddProductRequest) { r.Category = "other" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, Struct(req))
		})
	}
}
