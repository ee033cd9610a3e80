package hotel

import "errors"

var ErrInvalidSortKey = errors.New("invalid sort key")

// SortKey orders a hotel listing. The zero value sorts by rating, the
// default order of the explore screen.
type SortKey string

const (
	SortRatingDesc SortKey = "rating"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortNameAsc    SortKey = "name"
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortRatingDesc, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	default:
		return false
	}
}

func NewSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortRatingDesc, nil
	}
	key := SortKey(s)
	if !key.IsValid() {
		return "", ErrInvalidSortKey
	}
	return key, nil
}

// SearchFilter narrows a hotel listing. Zero-valued fields are inactive, so
// the empty filter matches everything.
type SearchFilter struct {
	Query     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Sort      SortKey
}
