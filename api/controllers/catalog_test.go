package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
	"github.com/mkoval-dev/bookmarket-backend/pkg/types"
)

type stubCatalog struct {
	products []catalog.Product
}

func (s *stubCatalog) List() []catalog.Product {
	return s.products
}

func (s *stubCatalog) Get(id string) (catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (s *stubCatalog) Add(product catalog.Product) error {
	s.products = append([]catalog.Product{product}, s.products...)
	return nil
}

func testProducts() []catalog.Product {
	author := "Михаил Булгаков"
	return []catalog.Product{
		{ID: "1", Title: "Роман", Author: &author, Price: priceFromInt(450), Category: enums.ProductCategoryBooks, ReviewsCount: 120, InStock: true},
		{ID: "2", Title: "Скетчбук", Price: priceFromInt(890), Category: enums.ProductCategoryStationery, ReviewsCount: 300, IsNew: true, InStock: true},
		{ID: "3", Title: "Набор", Price: priceFromInt(1500), Category: enums.ProductCategorySets, ReviewsCount: 10, InStock: true},
	}
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body types.SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data shape %T", body.Data)
	}
	return data
}

func TestCatalogListDefaultsToPopularity(t *testing.T) {
	handler := CatalogList(&stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	data := decodeData(t, w)
	products := data["products"].([]any)
	if len(products) != 3 {
		t.Fatalf("expected 3 products but got %d", len(products))
	}
	first := products[0].(map[string]any)
	if first["id"] != "2" {
		t.Fatalf("expected most-reviewed product first but got %v", first["id"])
	}
}

func TestCatalogListAppliesFilters(t *testing.T) {
	handler := CatalogList(&stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?category=Books&max_price=500", nil))

	data := decodeData(t, w)
	products := data["products"].([]any)
	if len(products) != 1 {
		t.Fatalf("expected 1 product but got %d", len(products))
	}
	if products[0].(map[string]any)["id"] != "1" {
		t.Fatalf("unexpected product %v", products[0])
	}
}

func TestCatalogListRejectsNegativePrice(t *testing.T) {
	handler := CatalogList(&stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?min_price=-5", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", w.Code)
	}
}

func TestCatalogListRejectsInvertedPriceRange(t *testing.T) {
	handler := CatalogList(&stubCatalog{products: testProducts()}, nil)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?min_price=100&max_price=50", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 but got %d", w.Code)
	}
}

func TestCatalogDetailReturnsProduct(t *testing.T) {
	handler := CatalogDetail(&stubCatalog{products: testProducts()}, nil)

	r := chi.NewRouter()
	r.Get("/catalog/{productId}", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d", w.Code)
	}
	data := decodeData(t, w)
	if data["id"] != "2" {
		t.Fatalf("unexpected product %v", data)
	}
}

func TestCatalogDetailUnknownIDIs404(t *testing.T) {
	handler := CatalogDetail(&stubCatalog{products: testProducts()}, nil)

	r := chi.NewRouter()
	r.Get("/catalog/{productId}", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 but got %d", w.Code)
	}
}
