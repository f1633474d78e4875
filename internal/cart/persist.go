package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/straye-as/storefront/internal/storage"
	"go.uber.org/zap"
)

// StorageKey is the fixed record key the cart is persisted under.
const StorageKey = "cart-storage"

// Backend is the durable key-value substrate a Store persists into.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Encode serializes lines as a flat JSON array of line objects.
func Encode(items []Line) ([]byte, error) {
	if items == nil {
		items = []Line{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

// Decode parses a record written by Encode.
func Decode(data []byte) ([]Line, error) {
	var items []Line
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if items == nil {
		items = []Line{}
	}
	return items, nil
}

func (s *Store) load(ctx context.Context) ([]Line, error) {
	if s.backend == nil {
		return []Line{}, nil
	}

	data, err := s.backend.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []Line{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted cart: %w", err)
	}

	items, err := Decode(data)
	if err != nil {
		s.logger.Warn("Persisted cart is unreadable, starting empty", zap.Error(err))
		return []Line{}, nil
	}

	valid := items[:0]
	for _, l := range items {
		if l.Quantity < 1 {
			s.logger.Warn("Dropping persisted cart line with non-positive quantity",
				zap.String("product_id", l.ProductID),
				zap.Int("quantity", l.Quantity),
			)
			continue
		}
		valid = append(valid, l)
	}
	return valid, nil
}

// save writes the lines to the backend. Failures are logged only.
func (s *Store) save(ctx context.Context, items []Line) {
	if s.backend == nil {
		return
	}

	data, err := Encode(items)
	if err != nil {
		s.logger.Warn("Failed to encode cart for persistence", zap.Error(err))
		return
	}

	if err := s.backend.Put(ctx, StorageKey, data); err != nil {
		s.logger.Warn("Failed to persist cart",
			zap.Int("lines", len(items)),
			zap.Error(err),
		)
	}
}
