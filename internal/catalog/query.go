package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
)

// Query carries the catalog view parameters. Category equal to
// enums.CategoryFilterAll disables category filtering.
type Query struct {
	Search   string
	Category string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     enums.SortOption
}

// DefaultQuery mirrors the storefront's initial filter state.
func DefaultQuery() Query {
	return Query{
		Category: enums.CategoryFilterAll,
		MinPrice: decimal.Zero,
		MaxPrice: decimal.NewFromInt(5000),
		Sort:     enums.SortPopular,
	}
}

// Derive computes the filtered, ordered catalog view. It is a pure function
// of its inputs: the input slice is never mutated and identical inputs yield
// identical output order. Filters apply in a fixed order (text, category,
// price) followed by a stable sort.
func Derive(products []Product, q Query) []Product {
	result := make([]Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if q.Category != enums.CategoryFilterAll && string(p.Category) != q.Category {
			continue
		}
		if p.Price.Cmp(q.MinPrice) < 0 || p.Price.Cmp(q.MaxPrice) > 0 {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, comparatorFor(q.Sort, result))
	return result
}

func matchesSearch(p Product, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(p.Title), loweredQuery) {
		return true
	}
	if p.Author != nil && strings.Contains(strings.ToLower(*p.Author), loweredQuery) {
		return true
	}
	return false
}

func comparatorFor(option enums.SortOption, items []Product) func(i, j int) bool {
	switch option {
	case enums.SortPriceAsc:
		return func(i, j int) bool { return items[i].Price.Cmp(items[j].Price) < 0 }
	case enums.SortPriceDesc:
		return func(i, j int) bool { return items[i].Price.Cmp(items[j].Price) > 0 }
	case enums.SortNewest:
		// IsNew first; ties keep their prior relative order (stable sort).
		return func(i, j int) bool { return items[i].IsNew && !items[j].IsNew }
	default:
		// Popularity is the documented fallback for unrecognized keys.
		return func(i, j int) bool { return items[i].ReviewsCount > items[j].ReviewsCount }
	}
}
