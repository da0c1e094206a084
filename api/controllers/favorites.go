package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/internal/favorites"
)

// FavoritesService is the surface the favorites handlers need.
type FavoritesService interface {
	Toggle(productID string) bool
	List() []string
}

// FavoritesList returns the liked ids in toggle order.
func FavoritesList(svc FavoritesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := svc.List()
		responses.WriteSuccess(w, map[string]any{
			"product_ids": ids,
			"total":       len(ids),
		})
	}
}

// FavoritesToggle flips membership for the path id and reports the new state.
func FavoritesToggle(svc FavoritesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		favorited := svc.Toggle(productID)
		responses.WriteSuccess(w, map[string]any{
			"product_id": productID,
			"favorited":  favorited,
		})
	}
}

var _ FavoritesService = (*favorites.Set)(nil)
