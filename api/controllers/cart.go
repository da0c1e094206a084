package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/api/validators"
	"github.com/mkoval-dev/bookmarket-backend/internal/cart"
	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// CartService is the mutation and read surface the cart handlers need.
type CartService interface {
	Add(ctx context.Context, product catalog.Product)
	Remove(ctx context.Context, productID string)
	UpdateQuantity(ctx context.Context, productID string, quantity int)
	Items() []cart.LineItem
	Count() int
	Subtotal() decimal.Decimal
}

type cartPayload struct {
	Items    []cart.LineItem `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func cartSnapshot(svc CartService) cartPayload {
	return cartPayload{
		Items:    svc.Items(),
		Count:    svc.Count(),
		Subtotal: svc.Subtotal(),
	}
}

// CartFetch returns the full cart with totals.
func CartFetch(svc CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartSnapshot(svc))
	}
}

type cartAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartAddItem resolves the product and increments its line item. Unknown
// ids are a 404; the mutation itself cannot fail.
func CartAddItem(svc CartService, store CatalogLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body cartAddRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := store.Get(body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.Add(r.Context(), product)
		responses.WriteSuccess(w, cartSnapshot(svc))
	}
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartUpdateQuantity sets the quantity for a line item. Values below 1 are
// ignored and the unchanged cart is returned.
func CartUpdateQuantity(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), body.Quantity)
		responses.WriteSuccess(w, cartSnapshot(svc))
	}
}

// CartRemoveItem drops the line item regardless of quantity.
func CartRemoveItem(svc CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Remove(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, cartSnapshot(svc))
	}
}

var _ CartService = (*cart.Ledger)(nil)
