package mapper

import (
	"github.com/straye-as/storefront/internal/cart"
	"github.com/straye-as/storefront/internal/checkout"
	"github.com/straye-as/storefront/internal/domain"
)

// ToCartDTO converts a cart snapshot to CartDTO
func ToCartDTO(snap cart.Snapshot) domain.CartDTO {
	items := make([]domain.CartLineDTO, 0, len(snap.Items))
	for _, l := range snap.Items {
		items = append(items, ToCartLineDTO(l))
	}
	return domain.CartDTO{
		Items: items,
		Total: snap.Total,
		Count: snap.Count,
		Units: snap.Units,
	}
}

// ToCartLineDTO converts a cart line to CartLineDTO
func ToCartLineDTO(l cart.Line) domain.CartLineDTO {
	return domain.CartLineDTO{
		ProductID:  l.ProductID,
		Name:       l.Name,
		UnitPrice:  l.UnitPrice,
		Image:      l.Image,
		Quantity:   l.Quantity,
		Variations: ToVariationDTOs(l.Variations),
		Subtotal:   l.Subtotal(),
	}
}

// ToCartLine builds the cart line described by an add request
func ToCartLine(req *domain.AddCartItemRequest) cart.Line {
	return cart.Line{
		ProductID:  req.ProductID,
		Name:       req.Name,
		UnitPrice:  req.UnitPrice,
		Image:      req.Image,
		Quantity:   req.Quantity,
		Variations: ToVariations(req.Variations),
	}
}

// ToVariations converts request variations to cart variations, keeping their order
func ToVariations(dtos []domain.VariationDTO) []cart.Variation {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]cart.Variation, len(dtos))
	for i, v := range dtos {
		out[i] = cart.Variation{Name: v.Name, Value: v.Value}
	}
	return out
}

// ToVariationDTOs converts cart variations to their API form
func ToVariationDTOs(vs []cart.Variation) []domain.VariationDTO {
	if len(vs) == 0 {
		return nil
	}
	out := make([]domain.VariationDTO, len(vs))
	for i, v := range vs {
		out[i] = domain.VariationDTO{Name: v.Name, Value: v.Value}
	}
	return out
}

// ToCustomer converts a checkout form to the customer printed on the order summary
func ToCustomer(req *domain.CheckoutRequest) checkout.Customer {
	return checkout.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		Pincode: req.Pincode,
		Notes:   req.Notes,
	}
}

// ToEnquiry converts a contact form to an Enquiry
func ToEnquiry(req *domain.ContactRequest) checkout.Enquiry {
	return checkout.Enquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
}
