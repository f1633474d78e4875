package mapper_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/straye-as/storefront/internal/cart"
	"github.com/straye-as/storefront/internal/domain"
	"github.com/straye-as/storefront/internal/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCartLine(t *testing.T) {
	req := &domain.AddCartItemRequest{
		ProductID:  "A",
		Name:       "Kurta",
		UnitPrice:  decimal.NewFromInt(100),
		Image:      "/img/a.jpg",
		Quantity:   2,
		Variations: []domain.VariationDTO{{Name: "size", Value: "M"}, {Name: "color", Value: "red"}},
	}

	line := mapper.ToCartLine(req)

	assert.Equal(t, "A", line.ProductID)
	assert.Equal(t, "Kurta", line.Name)
	assert.Equal(t, "/img/a.jpg", line.Image)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, []cart.Variation{{Name: "size", Value: "M"}, {Name: "color", Value: "red"}}, line.Variations)
}

func TestToVariations_EmptyIsNil(t *testing.T) {
	assert.Nil(t, mapper.ToVariations(nil))
	assert.Nil(t, mapper.ToVariations([]domain.VariationDTO{}))
	assert.Nil(t, mapper.ToVariationDTOs(nil))
}

func TestToCartDTO(t *testing.T) {
	snap := cart.Snapshot{
		Items: []cart.Line{
			{ProductID: "A", Name: "Kurta", UnitPrice: decimal.NewFromInt(100), Quantity: 3},
		},
		Total: decimal.NewFromInt(300),
		Count: 1,
		Units: 3,
	}

	dto := mapper.ToCartDTO(snap)

	require.Len(t, dto.Items, 1)
	assert.Equal(t, "300", dto.Items[0].Subtotal.String())
	assert.Equal(t, "300", dto.Total.String())
	assert.Equal(t, 1, dto.Count)
	assert.Equal(t, 3, dto.Units)

	empty := mapper.ToCartDTO(cart.Snapshot{})
	assert.NotNil(t, empty.Items)
}
