package handler

import (
	"net/http"

	"github.com/straye-as/storefront/internal/domain"
	"github.com/straye-as/storefront/internal/service"
	"go.uber.org/zap"
)

// CheckoutHandler handles checkout and contact form submissions
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	logger          *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler instance
func NewCheckoutHandler(checkoutService *service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// Checkout godoc
// @Summary Check out cart
// @Description Build the order summary of the caller's cart and a WhatsApp link carrying it. The cart is cleared afterwards.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body domain.CheckoutRequest true "Delivery details"
// @Success 200 {object} domain.CheckoutResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.checkoutService.Checkout(r.Context(), sessionID(r), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "check out")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Contact godoc
// @Summary Send enquiry
// @Description Build a WhatsApp link carrying a contact or service enquiry
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body domain.ContactRequest true "Enquiry"
// @Success 200 {object} domain.ContactResponse
// @Failure 400 {object} domain.APIError
// @Router /contact [post]
func (h *CheckoutHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	respondJSON(w, http.StatusOK, h.checkoutService.Contact(r.Context(), &req))
}
