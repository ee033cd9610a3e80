package review

import "math"

// Summary is the displayed rating state for a hotel: the average shown next
// to the star icon and the count of reviews behind it.
type Summary struct {
	Average float64
	Count   int
}

// AverageRating computes the mean of the given ratings rounded to one
// decimal place. With no reviews it falls back to the hotel's static catalog
// rating, so a freshly listed hotel still shows a number instead of zero.
func AverageRating(ratings []int, fallback float64) float64 {
	if len(ratings) == 0 {
		return fallback
	}
	var sum int
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// Summarize pairs the average with the review count.
func Summarize(ratings []int, fallback float64) Summary {
	return Summary{
		Average: AverageRating(ratings, fallback),
		Count:   len(ratings),
	}
}
