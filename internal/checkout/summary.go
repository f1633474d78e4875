// Package checkout turns carts and contact forms into messages for the
// shop's messaging channel. Nothing here talks to the channel itself: the
// storefront opens the returned deep link in the customer's browser.
package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/straye-as/storefront/internal/cart"
)

// Customer holds the delivery details of an order
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	Pincode string
	Notes   string
}

// Enquiry is a contact or service request from the storefront forms
type Enquiry struct {
	Name    string
	Phone   string
	Email   string
	Subject string
	Message string
}

// Formatter renders order summaries and enquiries as plain text
type Formatter struct {
	ShopName       string
	CurrencySymbol string
}

// OrderSummary renders the cart as a human-readable order.
func (f Formatter) OrderSummary(customer Customer, items []cart.Line, total decimal.Decimal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New order - %s\n\n", f.ShopName)
	fmt.Fprintf(&b, "Name: %s\n", customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", customer.Phone)
	if customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", customer.Email)
	}
	fmt.Fprintf(&b, "Address: %s, %s - %s\n", customer.Address, customer.City, customer.Pincode)
	if customer.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", customer.Notes)
	}

	b.WriteString("\nItems:\n")
	units := 0
	for i, l := range items {
		fmt.Fprintf(&b, "%d. %s", i+1, l.Name)
		if v := variationLabel(l.Variations); v != "" {
			fmt.Fprintf(&b, " (%s)", v)
		}
		fmt.Fprintf(&b, "\n   %d x %s = %s\n", l.Quantity, f.money(l.UnitPrice), f.money(l.Subtotal()))
		units += l.Quantity
	}

	fmt.Fprintf(&b, "\nTotal items: %d\n", units)
	fmt.Fprintf(&b, "Total: %s", f.money(total))
	return b.String()
}

// EnquiryMessage renders a contact form submission.
func (f Formatter) EnquiryMessage(e Enquiry) string {
	var b strings.Builder

	subject := e.Subject
	if subject == "" {
		subject = "Enquiry"
	}
	fmt.Fprintf(&b, "%s - %s\n\n", subject, f.ShopName)
	fmt.Fprintf(&b, "Name: %s\n", e.Name)
	fmt.Fprintf(&b, "Phone: %s\n", e.Phone)
	if e.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", e.Email)
	}
	fmt.Fprintf(&b, "\n%s", e.Message)
	return b.String()
}

func (f Formatter) money(d decimal.Decimal) string {
	return f.CurrencySymbol + d.StringFixed(2)
}

func variationLabel(variations []cart.Variation) string {
	parts := make([]string, 0, len(variations))
	for _, v := range variations {
		parts = append(parts, v.Name+": "+v.Value)
	}
	return strings.Join(parts, ", ")
}
