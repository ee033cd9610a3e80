//go:build unit

package review_test

import (
	"testing"

	"hotelhub/internal/domain/review"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name     string
		ratings  []int
		fallback float64
		want     float64
	}{
		{name: "no reviews falls back to catalog rating", ratings: nil, fallback: 4.5, want: 4.5},
		{name: "empty slice falls back too", ratings: []int{}, fallback: 3.8, want: 3.8},
		{name: "single review ignores fallback", ratings: []int{3}, fallback: 4.5, want: 3.0},
		{name: "exact mean", ratings: []int{4, 4, 4}, fallback: 0, want: 4.0},
		{name: "rounds down", ratings: []int{4, 4, 5}, fallback: 0, want: 4.3},
		{name: "rounds up", ratings: []int{4, 5, 5}, fallback: 0, want: 4.7},
		{name: "half rounds away from zero", ratings: []int{4, 5}, fallback: 0, want: 4.5},
		{name: "all minimum", ratings: []int{1, 1, 1, 1}, fallback: 5, want: 1.0},
		{name: "mixed spread", ratings: []int{1, 2, 3, 4, 5}, fallback: 0, want: 3.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := review.AverageRating(c.ratings, c.fallback)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	s := review.Summarize([]int{5, 4}, 0)
	assert.InDelta(t, 4.5, s.Average, 1e-9)
	assert.Equal(t, 2, s.Count)

	empty := review.Summarize(nil, 4.2)
	assert.InDelta(t, 4.2, empty.Average, 1e-9)
	assert.Equal(t, 0, empty.Count)
}
