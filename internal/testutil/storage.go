package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/straye-as/storefront/internal/storage"
)

// ErrBackendDown is returned by FailingStorage
var ErrBackendDown = errors.New("backend unavailable")

// FailingStorage is a KeyValue whose operations fail on demand.
// It records every successful Put so tests can inspect what was persisted.
type FailingStorage struct {
	mu        sync.Mutex
	records   map[string][]byte
	FailGet   bool
	FailPut   bool
	PutCalls  int
	LastValue []byte
}

// NewFailingStorage creates an empty FailingStorage
func NewFailingStorage() *FailingStorage {
	return &FailingStorage{records: make(map[string][]byte)}
}

// SetFailGet toggles Get failures
func (s *FailingStorage) SetFailGet(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailGet = fail
}

// SetFailPut toggles Put failures
func (s *FailingStorage) SetFailPut(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailPut = fail
}

// Seed stores value under key without counting it as a Put
func (s *FailingStorage) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), value...)
}

// Record returns the value stored under key
func (s *FailingStorage) Record(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[key]
	return v, ok
}

func (s *FailingStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailGet {
		return nil, ErrBackendDown
	}
	v, ok := s.records[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *FailingStorage) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PutCalls++
	if s.FailPut {
		return ErrBackendDown
	}
	s.records[key] = append([]byte(nil), value...)
	s.LastValue = append([]byte(nil), value...)
	return nil
}

func (s *FailingStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
