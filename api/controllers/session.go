package controllers

import (
	"net/http"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/api/validators"
	"github.com/mkoval-dev/bookmarket-backend/internal/session"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// SessionService is the surface the session handlers need.
type SessionService interface {
	Login(role enums.SessionRole) session.User
	Logout()
	Current() (session.User, bool)
}

// SessionCurrent reports the active identity, if any.
func SessionCurrent(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := svc.Current()
		if !ok {
			responses.WriteSuccess(w, map[string]any{"authenticated": false})
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"authenticated": true,
			"user":          user,
		})
	}
}

type loginRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// SessionLogin mints the demo identity for the requested role, replacing any
// existing session.
func SessionLogin(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user := svc.Login(enums.SessionRole(body.Role))
		responses.WriteSuccess(w, map[string]any{
			"authenticated": true,
			"user":          user,
		})
	}
}

// SessionLogout clears the slot; idempotent.
func SessionLogout(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout()
		responses.WriteSuccess(w, map[string]any{"authenticated": false})
	}
}

var _ SessionService = (*session.Slot)(nil)
