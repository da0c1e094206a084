package controllers

import (
	"context"
	"net/http"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/internal/theme"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
)

// ThemeService is the surface the theme handlers need.
type ThemeService interface {
	Mode() enums.ThemeMode
	Toggle(ctx context.Context) bool
}

// ThemeCurrent reports the active display mode.
func ThemeCurrent(svc ThemeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"mode": svc.Mode().String()})
	}
}

// ThemeToggle flips and persists the display mode.
func ThemeToggle(svc ThemeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Toggle(r.Context())
		responses.WriteSuccess(w, map[string]string{"mode": svc.Mode().String()})
	}
}

var _ ThemeService = (*theme.Preference)(nil)
