package catalog

import (
	"fmt"
	"sync"

	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

// Store holds the in-memory product list. Reads return snapshots; the only
// mutation is the admin intake prepend.
type Store struct {
	mu       sync.RWMutex
	products []Product
	hub      *observer.Hub
}

// NewStore seeds the catalog. The seed slice is copied so callers cannot
// mutate catalog state behind the lock.
func NewStore(seed []Product, hub *observer.Hub) *Store {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &Store{products: products, hub: hub}
}

// List returns a snapshot of the catalog in its current order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
}

// Add prepends a fully-formed record, so new arrivals surface first.
func (s *Store) Add(product Product) error {
	if product.ID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	s.mu.Lock()
	if _, exists := s.byID(product.ID); exists {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("product %s already exists", product.ID))
	}
	s.products = append([]Product{product}, s.products...)
	s.mu.Unlock()

	s.hub.Publish(observer.Event{Store: "catalog", Op: "add"})
	return nil
}

func (s *Store) byID(id string) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
