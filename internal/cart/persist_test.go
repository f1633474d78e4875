package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/straye-as/storefront/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_EmptyCartIsEmptyArray(t *testing.T) {
	data, err := cart.Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestEncode_FlatArrayOfLines(t *testing.T) {
	items := []cart.Line{
		{
			ProductID:  "sku-1",
			Name:       "Kurta",
			UnitPrice:  decimal.RequireFromString("499.50"),
			Image:      "/img/kurta.jpg",
			Quantity:   2,
			Variations: []cart.Variation{{Name: "size", Value: "M"}},
		},
		{
			ProductID: "sku-2",
			Name:      "Dupatta",
			UnitPrice: decimal.NewFromInt(199),
			Quantity:  1,
		},
	}

	data, err := cart.Encode(items)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"productId":"sku-1","name":"Kurta","price":"499.5","image":"/img/kurta.jpg","quantity":2,
		 "variations":[{"name":"size","value":"M"}]},
		{"productId":"sku-2","name":"Dupatta","price":"199","image":"","quantity":1}
	]`, string(data))
}

func TestDecode_RoundTrip(t *testing.T) {
	items := []cart.Line{
		{
			ProductID:  "sku-1",
			Name:       "Kurta",
			UnitPrice:  decimal.RequireFromString("499.5"),
			Quantity:   2,
			Variations: []cart.Variation{{Name: "color", Value: "red"}, {Name: "size", Value: "M"}},
		},
	}

	data, err := cart.Encode(items)
	require.NoError(t, err)
	decoded, err := cart.Decode(data)
	require.NoError(t, err)

	require.Len(t, decoded, 1)
	assert.Equal(t, items[0].Variations, decoded[0].Variations)
	assert.True(t, items[0].UnitPrice.Equal(decoded[0].UnitPrice))

	again, err := cart.Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestDecode_AcceptsNumericPrice(t *testing.T) {
	decoded, err := cart.Decode([]byte(`[{"productId":"A","name":"A","price":100,"image":"","quantity":1}]`))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "100", decoded[0].UnitPrice.String())
}

func TestDecode_Null(t *testing.T) {
	decoded, err := cart.Decode([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := cart.Decode([]byte(`{"productId":"A"}`))
	assert.Error(t, err)
}

func TestLine_Matches(t *testing.T) {
	red := cart.Variation{Name: "color", Value: "red"}
	line := cart.Line{ProductID: "A", Variations: []cart.Variation{red}}

	assert.True(t, line.Matches("A", []cart.Variation{red}))
	assert.False(t, line.Matches("B", []cart.Variation{red}))
	assert.False(t, line.Matches("A", nil))
	assert.False(t, line.Matches("A", []cart.Variation{{Name: "color", Value: "blue"}}))
}

func TestLine_Subtotal(t *testing.T) {
	line := cart.Line{UnitPrice: decimal.RequireFromString("12.25"), Quantity: 4}
	assert.Equal(t, "49", line.Subtotal().String())
}
