package cart

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Variation is one chosen attribute value for a product, e.g. color=red.
type Variation struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Line is a single purchasable entry in the cart.
//
// Name, UnitPrice and Image are a snapshot taken when the line was first
// added; they are never refreshed by later additions of the same line.
type Line struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	Quantity   int             `json:"quantity"`
	Variations []Variation     `json:"variations,omitempty"`
}

// Subtotal returns UnitPrice * Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Matches reports whether the line has the given identity. Variations are
// compared as an ordered sequence, so {color,size} and {size,color} are
// different lines. A nil and an empty variation list are the same identity.
func (l Line) Matches(productID string, variations []Variation) bool {
	return l.ProductID == productID && slices.Equal(l.Variations, variations)
}

func (l Line) clone() Line {
	l.Variations = slices.Clone(l.Variations)
	return l
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = l.clone()
	}
	return out
}
