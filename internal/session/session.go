// Package session holds the at-most-one demo identity. There is no
// credential check anywhere in this package: Login mints a fixed synthetic
// user for the requested role. Role gating happens at the route boundary
// and must not be mistaken for access control.
package session

import (
	"sync"

	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

// User is the synthetic signed-in identity.
type User struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  enums.SessionRole `json:"role"`
}

// Slot holds zero or one active session. Memory-only; resets on restart and
// never expires on its own.
type Slot struct {
	mu      sync.RWMutex
	current *User
	hub     *observer.Hub
}

func NewSlot(hub *observer.Hub) *Slot {
	return &Slot{hub: hub}
}

// Login unconditionally replaces any existing session with the demo
// identity for the role.
func (s *Slot) Login(role enums.SessionRole) User {
	user := User{
		ID:    "u1",
		Name:  "Иван Иванов",
		Email: "user@store.com",
		Role:  role,
	}
	if role == enums.SessionRoleAdmin {
		user.Name = "Администратор"
		user.Email = "admin@store.com"
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	s.hub.Publish(observer.Event{Store: "session", Op: "login"})
	return user
}

// Logout clears the slot; no-op when already empty.
func (s *Slot) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.hub.Publish(observer.Event{Store: "session", Op: "logout"})
}

// Current returns the active session, if any.
func (s *Slot) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}

// Role returns the active role or empty when signed out.
func (s *Slot) Role() enums.SessionRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Role
}
