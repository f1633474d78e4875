package domain

import "github.com/shopspring/decimal"

// VariationDTO is one selected product attribute, e.g. color=red
type VariationDTO struct {
	Name  string `json:"name" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=100"`
}

// CartLineDTO is a cart line as returned by the API
type CartLineDTO struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"price" swaggertype:"string" example:"100"`
	Image      string          `json:"image,omitempty"`
	Quantity   int             `json:"quantity"`
	Variations []VariationDTO  `json:"variations,omitempty"`
	Subtotal   decimal.Decimal `json:"subtotal" swaggertype:"string" example:"300"`
}

// CartDTO is the full cart of the caller's session.
// Count is the number of distinct lines; Units is the number of items across all lines.
type CartDTO struct {
	Items []CartLineDTO   `json:"items"`
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"300"`
	Count int             `json:"count"`
	Units int             `json:"units"`
}

// CartCountDTO backs the header cart badge
type CartCountDTO struct {
	Count int `json:"count"`
}

// AddCartItemRequest adds a product snapshot to the cart.
// Callers fetch name, price and image from the catalog before adding.
type AddCartItemRequest struct {
	ProductID  string          `json:"productId" validate:"required,max=255"`
	Name       string          `json:"name" validate:"required,max=255"`
	UnitPrice  decimal.Decimal `json:"price" swaggertype:"string" example:"100"`
	Image      string          `json:"image,omitempty" validate:"max=2048"`
	Quantity   int             `json:"quantity" validate:"required,gte=1"`
	Variations []VariationDTO  `json:"variations,omitempty" validate:"omitempty,max=10,dive"`
}

// UpdateCartItemRequest sets the quantity of an existing line; zero or less removes it
type UpdateCartItemRequest struct {
	ProductID  string         `json:"productId" validate:"required,max=255"`
	Variations []VariationDTO `json:"variations,omitempty" validate:"omitempty,max=10,dive"`
	Quantity   int            `json:"quantity"`
}

// RemoveCartItemRequest identifies the line to remove
type RemoveCartItemRequest struct {
	ProductID  string         `json:"productId" validate:"required,max=255"`
	Variations []VariationDTO `json:"variations,omitempty" validate:"omitempty,max=10,dive"`
}

// CheckoutRequest carries the delivery details entered on the checkout form
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,len=10,numeric"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address" validate:"required,max=500"`
	City    string `json:"city" validate:"required,max=100"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`
	Notes   string `json:"notes,omitempty" validate:"max=1000"`
}

// CheckoutResponse is the order handed off to the messaging channel
type CheckoutResponse struct {
	Summary string          `json:"summary"`
	Link    string          `json:"link"`
	Total   decimal.Decimal `json:"total" swaggertype:"string" example:"300"`
	Count   int             `json:"count"`
}

// ContactRequest carries a contact or service enquiry form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,len=10,numeric"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Subject string `json:"subject,omitempty" validate:"max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ContactResponse holds the messaging link for a submitted enquiry
type ContactResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}
