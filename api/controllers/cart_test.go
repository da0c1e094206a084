package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/internal/cart"
	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
)

type stubCart struct {
	added    []string
	removed  []string
	updates  map[string]int
	snapshot []cart.LineItem
}

func newStubCart() *stubCart {
	return &stubCart{updates: map[string]int{}}
}

func (s *stubCart) Add(ctx context.Context, product catalog.Product) {
	s.added = append(s.added, product.ID)
}

func (s *stubCart) Remove(ctx context.Context, productID string) {
	s.removed = append(s.removed, productID)
}

func (s *stubCart) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		return
	}
	s.updates[productID] = quantity
}

func (s *stubCart) Items() []cart.LineItem {
	return s.snapshot
}

func (s *stubCart) Count() int {
	total := 0
	for _, item := range s.snapshot {
		total += item.Quantity
	}
	return total
}

func (s *stubCart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.snapshot {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func TestCartFetchReturnsTotals(t *testing.T) {
	svc := newStubCart()
	svc.snapshot = []cart.LineItem{
		{Product: catalog.Product{ID: "1", Price: priceFromInt(200)}, Quantity: 2},
	}
	handler := CartFetch(svc)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	data := decodeData(t, w)
	if data["count"] != float64(2) {
		t.Fatalf("expected count 2 but got %v", data["count"])
	}
	if data["subtotal"] != "400" {
		t.Fatalf("expected subtotal 400 but got %v", data["subtotal"])
	}
}

func TestCartAddItemResolvesProduct(t *testing.T) {
	svc := newStubCart()
	handler := CartAddItem(svc, &stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"1"}`))
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	if len(svc.added) != 1 || svc.added[0] != "1" {
		t.Fatalf("expected product 1 added but got %v", svc.added)
	}
}

func TestCartAddItemUnknownProductIs404(t *testing.T) {
	svc := newStubCart()
	handler := CartAddItem(svc, &stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"missing"}`))
	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 but got %d", w.Code)
	}
	if len(svc.added) != 0 {
		t.Fatalf("nothing should be added on lookup failure")
	}
}

func TestCartAddItemRequiresProductID(t *testing.T) {
	svc := newStubCart()
	handler := CartAddItem(svc, &stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{}`))
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", w.Code)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	svc := newStubCart()
	r := chi.NewRouter()
	r.Patch("/cart/items/{productId}", CartUpdateQuantity(svc, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/1", strings.NewReader(`{"quantity":5}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	if svc.updates["1"] != 5 {
		t.Fatalf("expected quantity 5 but got %d", svc.updates["1"])
	}
}

func TestCartUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	svc := newStubCart()
	r := chi.NewRouter()
	r.Patch("/cart/items/{productId}", CartUpdateQuantity(svc, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/1", strings.NewReader(`{"quantity":0}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	if len(svc.updates) != 0 {
		t.Fatalf("quantity below 1 must not be applied, got %v", svc.updates)
	}
}

func TestCartRemoveItem(t *testing.T) {
	svc := newStubCart()
	r := chi.NewRouter()
	r.Delete("/cart/items/{productId}", CartRemoveItem(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	if len(svc.removed) != 1 || svc.removed[0] != "1" {
		t.Fatalf("expected product 1 removed but got %v", svc.removed)
	}
}
