package request

import (
	"hotelhub/internal/domain/hotel"
)

// SearchHotelsQuery binds the explore screen's query string. Sort is
// validated against the domain's sort keys after binding.
type SearchHotelsQuery struct {
	Q         string   `form:"q"`
	MinPrice  *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice  *float64 `form:"max_price" binding:"omitempty,gte=0"`
	MinRating *float64 `form:"min_rating" binding:"omitempty,gte=0,lte=5"`
	Sort      string   `form:"sort"`
	Limit     int      `form:"limit" binding:"omitempty,min=1"`
}

func (q *SearchHotelsQuery) ToFilter() (hotel.SearchFilter, error) {
	sort, err := hotel.NewSortKey(q.Sort)
	if err != nil {
		return hotel.SearchFilter{}, err
	}
	return hotel.SearchFilter{
		Query:     q.Q,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinRating: q.MinRating,
		Sort:      sort,
	}, nil
}
