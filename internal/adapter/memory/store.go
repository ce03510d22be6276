// Package memory provides process-local implementations of the storage,
// blob and event ports. They back the default configuration and tests.
package memory

import (
	"context"
	"sync"
)

// Store is a key-value store held in a map.
// Values are copied on the way in and out so callers cannot alias stored bytes.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// txMu serializes RunInTx callbacks. It is separate from mu so Get/Set
	// inside a callback do not deadlock.
	txMu sync.Mutex
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns the value stored under key. found is false for absent keys.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return clone(v), true, nil
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = clone(value)
	return nil
}

// Ping always succeeds for an in-process store.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Keys returns the number of stored keys.
func (s *Store) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

type txKey struct{}

// RunInTx runs fn while holding the store-wide write lock, so concurrent
// read-modify-write sequences cannot interleave. A RunInTx call inside fn
// joins the outer call instead of waiting on the lock.
// On panic from fn: the lock is released and the panic propagates.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if owner, _ := ctx.Value(txKey{}).(*Store); owner == s {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
