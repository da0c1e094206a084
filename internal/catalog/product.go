package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
)

// Product is a catalog record. Immutable once added; the catalog only grows.
type Product struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Author       *string               `json:"author,omitempty"`
	Price        decimal.Decimal       `json:"price"`
	OldPrice     *decimal.Decimal      `json:"old_price,omitempty"`
	Category     enums.ProductCategory `json:"category"`
	Image        string                `json:"image"`
	Rating       float64               `json:"rating"`
	ReviewsCount int                   `json:"reviews_count"`
	Description  string                `json:"description"`
	Tags         []string              `json:"tags"`
	IsNew        bool                  `json:"is_new"`
	InStock      bool                  `json:"in_stock"`
}
