// Package favorites holds the session-only set of liked product ids.
// Deliberately not persisted: the set resets on process start.
package favorites

import (
	"sync"

	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

type Set struct {
	mu  sync.RWMutex
	ids map[string]struct{}
	// order keeps toggle insertion order for stable listings
	order []string
	hub   *observer.Hub
}

func NewSet(hub *observer.Hub) *Set {
	return &Set{ids: make(map[string]struct{}), hub: hub}
}

// Toggle adds the id when absent and removes it when present. Applying it
// twice always restores the original membership.
func (s *Set) Toggle(productID string) bool {
	s.mu.Lock()
	_, present := s.ids[productID]
	if present {
		delete(s.ids, productID)
		for i, id := range s.order {
			if id == productID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.ids[productID] = struct{}{}
		s.order = append(s.order, productID)
	}
	s.mu.Unlock()

	s.hub.Publish(observer.Event{Store: "favorites", Op: "toggle"})
	return !present
}

// Contains reports membership.
func (s *Set) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[productID]
	return ok
}

// List returns ids in toggle-insertion order.
func (s *Set) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
