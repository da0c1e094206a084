package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/api/responses"
	"github.com/mkoval-dev/bookmarket-backend/api/validators"
	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	pkgerrors "github.com/mkoval-dev/bookmarket-backend/pkg/errors"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
)

// CatalogWriter is the intake surface the admin handlers need.
type CatalogWriter interface {
	Add(product catalog.Product) error
}

type createProductRequest struct {
	Title       string           `json:"title" validate:"required"`
	Author      *string          `json:"author"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	OldPrice    *decimal.Decimal `json:"old_price"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	InStock     *bool            `json:"in_stock"`
}

// AdminCreateProduct prepends a new record to the catalog. The record is
// always marked new; rating and review count start at zero.
func AdminCreateProduct(store CatalogWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if body.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative"))
			return
		}

		category := enums.ProductCategoryBooks
		if body.Category != "" {
			parsed, err := enums.ParseProductCategory(body.Category)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category"))
				return
			}
			category = parsed
		}

		product := catalog.Product{
			ID:          uuid.NewString(),
			Title:       validators.SanitizeString(body.Title, 300),
			Author:      body.Author,
			Price:       *body.Price,
			OldPrice:    body.OldPrice,
			Category:    category,
			Image:       body.Image,
			Description: body.Description,
			Tags:        body.Tags,
			IsNew:       true,
			InStock:     true,
		}
		if body.InStock != nil {
			product.InStock = *body.InStock
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, product.ID)
		}

		if err := store.Add(product); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(ctx, "admin.product.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

var _ CatalogWriter = (*catalog.Store)(nil)
