//go:build unit || e2e

package builder

import (
	"time"

	domreview "hotelhub/internal/domain/review"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	UserName  string
	HotelID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		UserID:    uuid.New(),
		UserName:  "Test Reviewer",
		HotelID:   uuid.New(),
		Rating:    5,
		Comment:   "Excellent stay!",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithHotelID(hotelID uuid.UUID) *ReviewBuilder {
	r.HotelID = hotelID
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.HotelID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		HotelID: r.HotelID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.New(),
		UserID:    r.UserID,
		UserName:  r.UserName,
		HotelID:   r.HotelID,
		HotelName: "Test Hotel",
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        uuid.New(),
		UserName:  r.UserName,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildRatingSummary() *queries.HotelRatingSummary {
	return &queries.HotelRatingSummary{
		HotelID:       r.HotelID,
		TotalReviews:  10,
		AverageRating: 4.2,
		Rating1Count:  1,
		Rating2Count:  1,
		Rating3Count:  2,
		Rating4Count:  3,
		Rating5Count:  3,
		UpdatedAt:     r.UpdatedAt,
	}
}
