package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/api/validators"
	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// CatalogLister is the read surface the catalog handlers need.
type CatalogLister interface {
	List() []catalog.Product
	Get(id string) (catalog.Product, error)
}

// CatalogList returns the filtered, sorted catalog view. Every parameter is
// optional; omitting all of them yields the default storefront listing.
func CatalogList(store CatalogLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defaults := catalog.DefaultQuery()

		minPrice, err := validators.ParseQueryDecimal(r, "min_price", defaults.MinPrice)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryDecimal(r, "max_price", defaults.MaxPrice)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if maxPrice.Cmp(minPrice) < 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "max_price must not be below min_price"))
			return
		}

		query := catalog.Query{
			Search:   validators.SanitizeString(r.URL.Query().Get("q"), 200),
			Category: defaults.Category,
			MinPrice: minPrice,
			MaxPrice: maxPrice,
			Sort:     enums.ParseSortOption(r.URL.Query().Get("sort")),
		}
		if category := r.URL.Query().Get("category"); category != "" {
			query.Category = category
		}

		products := catalog.Derive(store.List(), query)
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"total":    len(products),
		})
	}
}

// CatalogDetail returns a single product by its path id.
func CatalogDetail(store CatalogLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")

		product, err := store.Get(productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

var _ CatalogLister = (*catalog.Store)(nil)
