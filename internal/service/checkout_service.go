package service

import (
	"context"
	"fmt"

	"github.com/straye-as/storefront/internal/checkout"
	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/domain"
	"github.com/straye-as/storefront/internal/mapper"
	"github.com/straye-as/storefront/internal/session"
	"go.uber.org/zap"
)

// CheckoutService hands a session cart off to the shop's messaging channel
type CheckoutService struct {
	sessions  *session.Manager
	formatter checkout.Formatter
	linker    *checkout.Linker
	clearCart bool
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService instance
func NewCheckoutService(sessions *session.Manager, cfg *config.CheckoutConfig, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		formatter: checkout.Formatter{
			ShopName:       cfg.ShopName,
			CurrencySymbol: cfg.CurrencySymbol,
		},
		linker:    checkout.NewLinker(cfg.WhatsAppBaseURL, cfg.WhatsAppNumber),
		clearCart: cfg.ClearCartOnCheckout,
		logger:    logger,
	}
}

// Checkout renders the order summary of the session cart and returns the chat link carrying it
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, req *domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	snap := store.Snapshot()
	if snap.Count == 0 {
		return nil, ErrEmptyCart
	}

	summary := s.formatter.OrderSummary(mapper.ToCustomer(req), snap.Items, snap.Total)
	resp := &domain.CheckoutResponse{
		Summary: summary,
		Link:    s.linker.Link(summary),
		Total:   snap.Total,
		Count:   snap.Count,
	}

	if s.clearCart {
		store.ClearCart(ctx)
	}

	s.logger.Info("checkout handed off",
		zap.String("session_id", sessionID),
		zap.Int("lines", snap.Count),
		zap.String("total", snap.Total.String()),
	)

	return resp, nil
}

// Contact renders an enquiry and returns the chat link carrying it
func (s *CheckoutService) Contact(ctx context.Context, req *domain.ContactRequest) *domain.ContactResponse {
	text := s.formatter.EnquiryMessage(mapper.ToEnquiry(req))

	s.logger.Info("enquiry handed off", zap.String("subject", req.Subject))

	return &domain.ContactResponse{
		Message: text,
		Link:    s.linker.Link(text),
	}
}
