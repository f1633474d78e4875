// Package cart holds the shopping-cart state of a single browser session.
//
// A Store owns an ordered list of lines keyed by (product, variations). Every
// mutation runs to completion under the store's lock, including the write of
// the whole list to durable storage. Storage failures are logged and never
// undo the in-memory change.
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Listener is notified with a snapshot of the lines after every mutation.
type Listener func(items []Line)

// Store is the cart of one session.
type Store struct {
	mu        sync.RWMutex
	items     []Line
	backend   Backend
	logger    *zap.Logger
	listeners map[int]Listener
	nextID    int
}

// New creates an empty store that persists to backend. A nil backend keeps
// the cart in memory only.
func New(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		items:     []Line{},
		backend:   backend,
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

// Open creates a store and loads the persisted cart from backend, if any.
// A missing record yields an empty cart; any other read failure is returned.
func Open(ctx context.Context, backend Backend, logger *zap.Logger) (*Store, error) {
	s := New(backend, logger)
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.items = items
	return s, nil
}

// AddToCart merges line into the cart. When a line with the same identity
// exists its quantity grows by line.Quantity and nothing else changes;
// otherwise line is appended.
func (s *Store) AddToCart(ctx context.Context, line Line) {
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].Matches(line.ProductID, line.Variations) {
			s.items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, line.clone())
	}
	snapshot := s.commit(ctx)
	s.mu.Unlock()

	s.logger.Debug("cart line added",
		zap.String("product_id", line.ProductID),
		zap.Int("quantity", line.Quantity),
		zap.Bool("merged", merged),
	)
	s.notify(snapshot)
}

// RemoveFromCart drops every line with the given identity. Removing a line
// that is not in the cart leaves the cart as it was.
func (s *Store) RemoveFromCart(ctx context.Context, productID string, variations []Variation) {
	s.mu.Lock()
	kept := make([]Line, 0, len(s.items))
	for _, l := range s.items {
		if !l.Matches(productID, variations) {
			kept = append(kept, l)
		}
	}
	s.items = kept
	snapshot := s.commit(ctx)
	s.mu.Unlock()

	s.notify(snapshot)
}

// UpdateQuantity sets the quantity of an existing line to exactly quantity.
// A quantity of zero or less removes the line. Unknown lines are not created.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, variations []Variation, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, productID, variations)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Matches(productID, variations) {
			s.items[i].Quantity = quantity
		}
	}
	snapshot := s.commit(ctx)
	s.mu.Unlock()

	s.notify(snapshot)
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.items = []Line{}
	snapshot := s.commit(ctx)
	s.mu.Unlock()

	s.notify(snapshot)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLines(s.items)
}

// Total returns the sum of unit price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return total(s.items)
}

// Count returns the number of distinct lines, not the number of units.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Units returns the sum of quantities over all lines.
func (s *Store) Units() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return units(s.items)
}

// Snapshot is a consistent view of the cart and its aggregates.
type Snapshot struct {
	Items []Line
	Total decimal.Decimal
	Count int
	Units int
}

// Snapshot returns the lines and aggregates read under a single lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items: cloneLines(s.items),
		Total: total(s.items),
		Count: len(s.items),
		Units: units(s.items),
	}
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// commit persists the current lines and returns a snapshot for listeners.
// The write is not bound to the request's cancellation.
// Callers must hold s.mu.
func (s *Store) commit(ctx context.Context) []Line {
	snapshot := cloneLines(s.items)
	s.save(context.WithoutCancel(ctx), snapshot)
	return snapshot
}

func (s *Store) notify(snapshot []Line) {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(cloneLines(snapshot))
	}
}

func total(items []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range items {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func units(items []Line) int {
	n := 0
	for _, l := range items {
		n += l.Quantity
	}
	return n
}
