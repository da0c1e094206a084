package enums

import "fmt"

// ProductCategory represents the canonical storefront categories.
type ProductCategory string

const (
	ProductCategoryBooks      ProductCategory = "Books"
	ProductCategoryStationery ProductCategory = "Stationery"
	ProductCategorySets       ProductCategory = "Sets"
	ProductCategoryArt        ProductCategory = "Art"
)

// CategoryFilterAll is the catalog filter value that disables category
// filtering. It is not a product category itself.
const CategoryFilterAll = "All"

var validProductCategories = []ProductCategory{
	ProductCategoryBooks,
	ProductCategoryStationery,
	ProductCategorySets,
	ProductCategoryArt,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
