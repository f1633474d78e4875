// Package session owns the cart stores of live browser sessions.
//
// Each session gets exactly one cart.Store, opened lazily on first access and
// persisted under its own storage namespace. Stores that have not been used
// for the configured idle TTL are dropped from memory by EvictIdle; their
// persisted state is reloaded on the next access. A store whose persisted
// state could not be read is never cached, so the next access retries.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/straye-as/storefront/internal/cart"
	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/logger"
	"github.com/straye-as/storefront/internal/storage"
	"go.uber.org/zap"
)

// namespacePrefix is prepended to every session ID to form its storage namespace
const namespacePrefix = "carts/"

type entry struct {
	store       *cart.Store
	unsubscribe func()
	lastUsed    time.Time
	ready       chan struct{}
	err         error
}

// Manager maps session IDs to their cart stores.
type Manager struct {
	mu      sync.Mutex
	backend storage.KeyValue
	idleTTL time.Duration
	logger  *zap.Logger
	entries map[string]*entry
	now     func() time.Time
}

// NewManager creates a manager persisting carts to backend
func NewManager(backend storage.KeyValue, cfg *config.SessionConfig, logger *zap.Logger) *Manager {
	return &Manager{
		backend: backend,
		idleTTL: cfg.IdleTTLDuration(),
		logger:  logger,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Cart returns the store of sessionID, loading it from storage on first use.
// Concurrent callers for the same session receive the same store. The load is
// not cancelled with ctx.
func (m *Manager) Cart(ctx context.Context, sessionID string) (*cart.Store, error) {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	if !ok {
		e = &entry{ready: make(chan struct{}), lastUsed: m.now()}
		m.entries[sessionID] = e
		m.mu.Unlock()

		m.open(context.WithoutCancel(ctx), sessionID, e)

		m.mu.Lock()
	}
	e.lastUsed = m.now()
	m.mu.Unlock()

	<-e.ready
	if e.err != nil {
		return nil, e.err
	}
	return e.store, nil
}

func (m *Manager) open(ctx context.Context, sessionID string, e *entry) {
	defer close(e.ready)

	log := logger.WithSession(m.logger, sessionID)
	backend := storage.NewScoped(m.backend, namespacePrefix+sessionID)
	store, err := cart.Open(ctx, backend, log)
	if err != nil {
		log.Error("Failed to load cart session", zap.Error(err))
		e.err = err

		m.mu.Lock()
		if m.entries[sessionID] == e {
			delete(m.entries, sessionID)
		}
		m.mu.Unlock()
		return
	}

	e.store = store
	e.unsubscribe = e.store.Subscribe(func(items []cart.Line) {
		units := 0
		for _, l := range items {
			units += l.Quantity
		}
		log.Debug("cart changed",
			zap.Int("lines", len(items)),
			zap.Int("units", units),
		)
	})

	log.Debug("cart session opened", zap.Int("lines", e.store.Count()))
}

// EvictIdle drops stores not used since now minus the idle TTL and returns how many were dropped.
func (m *Manager) EvictIdle(now time.Time) int {
	cutoff := now.Add(-m.idleTTL)

	m.mu.Lock()
	var evicted []*entry
	for id, e := range m.entries {
		if !isReady(e) || !e.lastUsed.Before(cutoff) {
			continue
		}
		delete(m.entries, id)
		evicted = append(evicted, e)
	}
	m.mu.Unlock()

	for _, e := range evicted {
		e.unsubscribe()
	}
	return len(evicted)
}

// Len returns the number of stores currently held in memory
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close releases every store. Persisted carts are left untouched.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		<-e.ready
		if e.err == nil {
			e.unsubscribe()
		}
	}
	m.logger.Info("Cart sessions closed", zap.Int("sessions", len(entries)))
}

func isReady(e *entry) bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}
