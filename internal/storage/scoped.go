package storage

import (
	"context"
	"strings"
)

// Scoped prefixes every key with a namespace so several owners can share one
// backend while each keeps using fixed, unqualified keys.
type Scoped struct {
	inner     KeyValue
	namespace string
}

// NewScoped wraps inner so that key k is stored as "<namespace>/k".
func NewScoped(inner KeyValue, namespace string) *Scoped {
	return &Scoped{inner: inner, namespace: strings.Trim(namespace, "/")}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, s.key(key))
}

func (s *Scoped) Put(ctx context.Context, key string, value []byte) error {
	return s.inner.Put(ctx, s.key(key), value)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.key(key))
}

func (s *Scoped) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "/" + key
}
