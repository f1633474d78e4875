package service_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/domain"
	"github.com/straye-as/storefront/internal/service"
	"github.com/straye-as/storefront/internal/session"
	"github.com/straye-as/storefront/internal/storage"
	"github.com/straye-as/storefront/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupServices(t *testing.T, clearOnCheckout bool) (*service.CartService, *service.CheckoutService) {
	t.Helper()
	logger := zap.NewNop()
	sessions := session.NewManager(storage.NewMemoryStorage(), &config.SessionConfig{IdleTTL: 60}, logger)
	t.Cleanup(sessions.Close)

	checkoutCfg := &config.CheckoutConfig{
		WhatsAppNumber:      "919876543210",
		WhatsAppBaseURL:     "https://wa.me",
		CurrencySymbol:      "₹",
		ShopName:            "Kala Boutique",
		ClearCartOnCheckout: clearOnCheckout,
	}
	return service.NewCartService(sessions, logger), service.NewCheckoutService(sessions, checkoutCfg, logger)
}

func addRequest(id string, price string, qty int, variations ...domain.VariationDTO) *domain.AddCartItemRequest {
	return &domain.AddCartItemRequest{
		ProductID:  id,
		Name:       "Product " + id,
		UnitPrice:  decimal.RequireFromString(price),
		Quantity:   qty,
		Variations: variations,
	}
}

func validCheckout() *domain.CheckoutRequest {
	return &domain.CheckoutRequest{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 MG Road",
		City:    "Pune",
		Pincode: "411001",
	}
}

// ============================================================================
// CartService
// ============================================================================

func TestCartService_AddAndGet(t *testing.T) {
	ctx := context.Background()
	carts, _ := setupServices(t, true)
	red := domain.VariationDTO{Name: "color", Value: "red"}

	_, err := carts.AddItem(ctx, "s1", addRequest("A", "100", 2, red))
	require.NoError(t, err)
	dto, err := carts.AddItem(ctx, "s1", addRequest("A", "100", 1, red))
	require.NoError(t, err)

	require.Len(t, dto.Items, 1)
	assert.Equal(t, 3, dto.Items[0].Quantity)
	assert.Equal(t, "300", dto.Items[0].Subtotal.String())
	assert.Equal(t, "300", dto.Total.String())
	assert.Equal(t, 1, dto.Count)
	assert.Equal(t, 3, dto.Units)
	assert.Equal(t, []domain.VariationDTO{red}, dto.Items[0].Variations)

	got, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, dto.Count, got.Count)

	count, err := carts.Count(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, count.Count)
}

func TestCartService_EmptyCartHasEmptyItems(t *testing.T) {
	carts, _ := setupServices(t, true)

	dto, err := carts.Get(context.Background(), "fresh")

	require.NoError(t, err)
	assert.NotNil(t, dto.Items)
	assert.Empty(t, dto.Items)
	assert.True(t, dto.Total.IsZero())
}

func TestCartService_AddRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	carts, _ := setupServices(t, true)

	_, err := carts.AddItem(ctx, "s1", addRequest("A", "-1", 1))
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = carts.AddItem(ctx, "s1", addRequest("A", "10", 0))
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	dto, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, dto.Items)
}

func TestCartService_RequiresSession(t *testing.T) {
	ctx := context.Background()
	carts, checkouts := setupServices(t, true)

	_, err := carts.Get(ctx, "")
	assert.ErrorIs(t, err, service.ErrSessionRequired)
	_, err = carts.AddItem(ctx, "", addRequest("A", "1", 1))
	assert.ErrorIs(t, err, service.ErrSessionRequired)
	_, err = checkouts.Checkout(ctx, "", validCheckout())
	assert.ErrorIs(t, err, service.ErrSessionRequired)
}

func TestCartService_UpdateRemoveClear(t *testing.T) {
	ctx := context.Background()
	carts, _ := setupServices(t, true)
	size := domain.VariationDTO{Name: "size", Value: "M"}

	_, err := carts.AddItem(ctx, "s1", addRequest("A", "10", 1, size))
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "s1", addRequest("B", "20", 1))
	require.NoError(t, err)

	dto, err := carts.UpdateItem(ctx, "s1", &domain.UpdateCartItemRequest{
		ProductID:  "A",
		Variations: []domain.VariationDTO{size},
		Quantity:   4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, dto.Items[0].Quantity)
	assert.Equal(t, "60", dto.Total.String())

	dto, err = carts.UpdateItem(ctx, "s1", &domain.UpdateCartItemRequest{ProductID: "B", Quantity: 0})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, "A", dto.Items[0].ProductID)

	dto, err = carts.RemoveItem(ctx, "s1", &domain.RemoveCartItemRequest{ProductID: "A"})
	require.NoError(t, err)
	assert.Len(t, dto.Items, 1, "variations are part of the line identity")

	dto, err = carts.RemoveItem(ctx, "s1", &domain.RemoveCartItemRequest{ProductID: "A", Variations: []domain.VariationDTO{size}})
	require.NoError(t, err)
	assert.Empty(t, dto.Items)

	_, err = carts.AddItem(ctx, "s1", addRequest("C", "5", 2))
	require.NoError(t, err)
	dto, err = carts.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, dto.Items)
	assert.Equal(t, 0, dto.Count)
}

// ============================================================================
// CheckoutService
// ============================================================================

func TestCheckoutService_Checkout(t *testing.T) {
	ctx := context.Background()
	carts, checkouts := setupServices(t, true)

	_, err := carts.AddItem(ctx, "s1", addRequest("A", "100", 2))
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "s1", addRequest("B", "50", 1))
	require.NoError(t, err)

	resp, err := checkouts.Checkout(ctx, "s1", validCheckout())
	require.NoError(t, err)

	assert.Equal(t, "250", resp.Total.String())
	assert.Equal(t, 2, resp.Count)
	assert.Contains(t, resp.Summary, "Total: ₹250.00")
	assert.Contains(t, resp.Summary, "Name: Asha")

	u, err := url.Parse(resp.Link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/919876543210", u.Path)
	assert.Equal(t, resp.Summary, u.Query().Get("text"))

	dto, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, dto.Items, "cart is cleared after checkout")
}

func TestCheckoutService_KeepsCartWhenConfigured(t *testing.T) {
	ctx := context.Background()
	carts, checkouts := setupServices(t, false)

	_, err := carts.AddItem(ctx, "s1", addRequest("A", "100", 1))
	require.NoError(t, err)

	_, err = checkouts.Checkout(ctx, "s1", validCheckout())
	require.NoError(t, err)

	dto, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, dto.Items, 1)
}

func TestCheckoutService_RejectsEmptyCart(t *testing.T) {
	_, checkouts := setupServices(t, true)

	resp, err := checkouts.Checkout(context.Background(), "s1", validCheckout())

	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Nil(t, resp)
}

func TestCheckoutService_Contact(t *testing.T) {
	_, checkouts := setupServices(t, true)

	resp := checkouts.Contact(context.Background(), &domain.ContactRequest{
		Name:    "Ravi",
		Phone:   "9123456780",
		Subject: "Alteration",
		Message: "Can you shorten sleeves?",
	})

	assert.Contains(t, resp.Message, "Alteration - Kala Boutique")
	u, err := url.Parse(resp.Link)
	require.NoError(t, err)
	assert.Equal(t, resp.Message, u.Query().Get("text"))
}

func TestCartService_LoadFailureIsReported(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewFailingStorage()
	backend.SetFailGet(true)
	sessions := session.NewManager(backend, &config.SessionConfig{IdleTTL: 60}, zap.NewNop())
	t.Cleanup(sessions.Close)
	carts := service.NewCartService(sessions, zap.NewNop())

	_, err := carts.AddItem(ctx, "s1", addRequest("A", "100", 1))

	require.ErrorIs(t, err, testutil.ErrBackendDown)
	assert.NotErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, 0, backend.PutCalls)

	backend.SetFailGet(false)
	cart, err := carts.AddItem(ctx, "s1", addRequest("A", "100", 1))
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count)
}
