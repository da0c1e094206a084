// Package kvstore is the durable string key/value boundary behind the cart
// and theme stores. It stands in for the original demo's client-local
// storage: small fixed keys, whole-value reads and writes, no TTLs.
package kvstore

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Well-known storage keys.
const (
	KeyCart         = "cart"
	KeyTheme        = "theme"
	KeyHasSeenIntro = "hasSeenIntro"
)

// ErrNotFound reports an absent key. Stores treat it as "no value yet",
// never as a failure.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the minimal surface the state stores persist through.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Memory is the in-process driver, the demo default.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("kvstore: empty key")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}
