package enums

// SortOption selects the catalog ordering.
type SortOption string

const (
	SortPopular   SortOption = "popular"
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
)

var validSortOptions = []SortOption{
	SortPopular,
	SortNewest,
	SortPriceAsc,
	SortPriceDesc,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption. Unknown values fall
// back to popularity ordering rather than erroring.
func ParseSortOption(value string) SortOption {
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate
		}
	}
	return SortPopular
}
