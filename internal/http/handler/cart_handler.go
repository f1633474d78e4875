package handler

import (
	"net/http"

	"github.com/straye-as/storefront/internal/domain"
	"github.com/straye-as/storefront/internal/service"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	cartService *service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler instance
func NewCartHandler(cartService *service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// Get godoc
// @Summary Get cart
// @Description Get the lines and totals of the caller's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} domain.CartDTO
// @Failure 500 {object} domain.APIError
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.Get(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "get cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// Count godoc
// @Summary Get cart count
// @Description Get the number of distinct lines in the caller's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} domain.CartCountDTO
// @Failure 500 {object} domain.APIError
// @Router /cart/count [get]
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.cartService.Count(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "count cart")
		return
	}

	respondJSON(w, http.StatusOK, count)
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cart. A line with the same product and variations has its quantity increased.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body domain.AddCartItemRequest true "Product snapshot"
// @Success 200 {object} domain.CartDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req domain.AddCartItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), sessionID(r), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "add cart item")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// UpdateItem godoc
// @Summary Update item quantity
// @Description Set the quantity of a cart line. A quantity of zero or less removes the line; unknown lines are ignored.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body domain.UpdateCartItemRequest true "Line and new quantity"
// @Success 200 {object} domain.CartDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /cart/items [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCartItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := h.cartService.UpdateItem(r.Context(), sessionID(r), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update cart item")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove the line with the given product and variations
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body domain.RemoveCartItemRequest true "Line to remove"
// @Success 200 {object} domain.CartDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /cart/items [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req domain.RemoveCartItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := h.cartService.RemoveItem(r.Context(), sessionID(r), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "remove cart item")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// Clear godoc
// @Summary Clear cart
// @Description Remove every line from the caller's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} domain.CartDTO
// @Failure 500 {object} domain.APIError
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.Clear(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "clear cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}
