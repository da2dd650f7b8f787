package validation

// AddProductRequest is the payload for POST /products.
type AddProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Image    string  `json:"image" validate:"required,uri"`
	Category string  `json:"category" validate:"required,oneof=casual party-wear ethnic trendy"`
}

// PlaceOrderRequest is the payload for POST /orders. Required-field
// enforcement lives here, upstream of the order writer.
type PlaceOrderRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	CustomerName string `json:"customer_name" validate:"required"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Size         string `json:"size" validate:"required,oneof=XS S M L XL XXL"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	Message      string `json:"message"`
}

// AdminLoginRequest is the payload for POST /admin/login.
type AdminLoginRequest struct {
	Code string `json:"code" validate:"required"`
}
