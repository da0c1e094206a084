// Package observer is the synchronous change-notification hub the state
// stores publish through. Delivery happens on the mutating goroutine, in
// subscription order, before the mutation call returns.
package observer

import "sync"

// Event describes a single store mutation.
type Event struct {
	Store string
	Op    string
}

// Listener receives every published event. Listeners must not block.
type Listener func(Event)

type Hub struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a listener for all future events.
func (h *Hub) Subscribe(l Listener) {
	if l == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

// Publish fans the event out to every listener. A nil hub is a no-op so
// stores can run unobserved in tests.
func (h *Hub) Publish(event Event) {
	if h == nil {
		return
	}
	h.mu.RLock()
	listeners := h.listeners
	h.mu.RUnlock()
	for _, l := range listeners {
		l(event)
	}
}
