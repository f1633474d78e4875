package checkout_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/straye-as/storefront/internal/cart"
	"github.com/straye-as/storefront/internal/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFormatter() checkout.Formatter {
	return checkout.Formatter{ShopName: "Kala Boutique", CurrencySymbol: "₹"}
}

func TestOrderSummary(t *testing.T) {
	items := []cart.Line{
		{
			ProductID:  "k1",
			Name:       "Cotton Kurta",
			UnitPrice:  decimal.NewFromInt(100),
			Quantity:   2,
			Variations: []cart.Variation{{Name: "color", Value: "red"}, {Name: "size", Value: "M"}},
		},
		{
			ProductID: "d1",
			Name:      "Dupatta",
			UnitPrice: decimal.RequireFromString("49.5"),
			Quantity:  1,
		},
	}
	customer := checkout.Customer{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 MG Road",
		City:    "Pune",
		Pincode: "411001",
	}

	summary := testFormatter().OrderSummary(customer, items, decimal.RequireFromString("249.5"))

	want := "New order - Kala Boutique\n\n" +
		"Name: Asha\n" +
		"Phone: 9876543210\n" +
		"Address: 12 MG Road, Pune - 411001\n" +
		"\nItems:\n" +
		"1. Cotton Kurta (color: red, size: M)\n" +
		"   2 x ₹100.00 = ₹200.00\n" +
		"2. Dupatta\n" +
		"   1 x ₹49.50 = ₹49.50\n" +
		"\nTotal items: 3\n" +
		"Total: ₹249.50"
	assert.Equal(t, want, summary)
}

func TestOrderSummary_OptionalFields(t *testing.T) {
	customer := checkout.Customer{
		Name:    "Asha",
		Phone:   "9876543210",
		Email:   "asha@example.com",
		Address: "12 MG Road",
		City:    "Pune",
		Pincode: "411001",
		Notes:   "Gift wrap please",
	}

	summary := testFormatter().OrderSummary(customer, nil, decimal.Zero)

	assert.Contains(t, summary, "Email: asha@example.com\n")
	assert.Contains(t, summary, "Notes: Gift wrap please\n")
	assert.Contains(t, summary, "Total: ₹0.00")
}

func TestEnquiryMessage(t *testing.T) {
	f := testFormatter()

	msg := f.EnquiryMessage(checkout.Enquiry{
		Name:    "Ravi",
		Phone:   "9123456780",
		Subject: "Alteration",
		Message: "Can you shorten sleeves?",
	})
	assert.Equal(t, "Alteration - Kala Boutique\n\nName: Ravi\nPhone: 9123456780\n\nCan you shorten sleeves?", msg)

	msg = f.EnquiryMessage(checkout.Enquiry{Name: "Ravi", Phone: "9123456780", Message: "Hi"})
	assert.True(t, strings.HasPrefix(msg, "Enquiry - Kala Boutique\n"))
}

func TestLinker_Link(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		number  string
		want    string
	}{
		{name: "plain", baseURL: "https://wa.me", number: "919876543210", want: "https://wa.me/919876543210?text="},
		{name: "trailing slash and plus", baseURL: "https://wa.me/", number: "+919876543210", want: "https://wa.me/919876543210?text="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := checkout.NewLinker(tt.baseURL, tt.number).Link("")
			assert.Equal(t, tt.want, link)
		})
	}
}

func TestLinker_EscapesText(t *testing.T) {
	text := "New order\nTotal: ₹1+1 & more?"

	link := checkout.NewLinker("https://wa.me", "919876543210").Link(text)

	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
	assert.Contains(t, link, "%0A")
	assert.Contains(t, link, "%2B")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, text, u.Query().Get("text"))
	assert.Equal(t, "/919876543210", u.Path)
}
