package service

import (
	"context"
	"fmt"

	"github.com/straye-as/storefront/internal/domain"
	"github.com/straye-as/storefront/internal/mapper"
	"github.com/straye-as/storefront/internal/session"
	"go.uber.org/zap"
)

// CartService handles business logic for session carts
type CartService struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewCartService creates a new CartService instance
func NewCartService(sessions *session.Manager, logger *zap.Logger) *CartService {
	return &CartService{
		sessions: sessions,
		logger:   logger,
	}
}

// Get returns the cart of sessionID
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.CartDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	dto := mapper.ToCartDTO(store.Snapshot())
	return &dto, nil
}

// Count returns the number of distinct lines in the cart of sessionID
func (s *CartService) Count(ctx context.Context, sessionID string) (*domain.CartCountDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &domain.CartCountDTO{Count: store.Count()}, nil
}

// AddItem adds a product to the cart, merging quantities with a matching line
func (s *CartService) AddItem(ctx context.Context, sessionID string, req *domain.AddCartItemRequest) (*domain.CartDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	store.AddToCart(ctx, mapper.ToCartLine(req))

	dto := mapper.ToCartDTO(store.Snapshot())
	return &dto, nil
}

// UpdateItem sets the quantity of a line. Zero or less removes it.
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, req *domain.UpdateCartItemRequest) (*domain.CartDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	store.UpdateQuantity(ctx, req.ProductID, mapper.ToVariations(req.Variations), req.Quantity)

	dto := mapper.ToCartDTO(store.Snapshot())
	return &dto, nil
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, req *domain.RemoveCartItemRequest) (*domain.CartDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	store.RemoveFromCart(ctx, req.ProductID, mapper.ToVariations(req.Variations))

	dto := mapper.ToCartDTO(store.Snapshot())
	return &dto, nil
}

// Clear empties the cart of sessionID
func (s *CartService) Clear(ctx context.Context, sessionID string) (*domain.CartDTO, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	store, err := s.sessions.Cart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	store.ClearCart(ctx)

	s.logger.Info("cart cleared", zap.String("session_id", sessionID))

	dto := mapper.ToCartDTO(store.Snapshot())
	return &dto, nil
}
