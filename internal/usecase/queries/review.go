package queries

import (
	"context"
	"time"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.ErrReviewNotFound

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	HotelID   uuid.UUID `json:"hotel_id"`
	HotelName string    `json:"hotel_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// HotelRatingSummary is the displayed rating block: the average next to the
// star icon and the distribution behind it. StaticRating is the hotel's
// catalog seed value used when no reviews exist yet.
type HotelRatingSummary struct {
	HotelID       uuid.UUID `json:"hotel_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	StaticRating  float64   `json:"-"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByHotelFirstPage(ctx context.Context, hotelID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	FindByHotelKeyset(ctx context.Context, hotelID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	GetHotelRatingSummary(ctx context.Context, hotelID uuid.UUID) (*HotelRatingSummary, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetHotelRatingSummary(ctx context.Context, hotelID uuid.UUID) (*HotelRatingSummary, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByHotelFirstPage(ctx, hotelID, int32(limit+1), filters.MinRating, filters.MaxRating)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByHotelKeyset(ctx, hotelID, lastCreatedAt, lastID, int32(limit+1), filters.MinRating, filters.MaxRating)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// GetHotelRatingSummary falls back to the hotel's static catalog rating when
// no reviews have been posted, so new listings never show zero stars.
func (q *reviewQueriesImpl) GetHotelRatingSummary(ctx context.Context, hotelID uuid.UUID) (*HotelRatingSummary, error) {
	summary, err := q.repo.GetHotelRatingSummary(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if summary.TotalReviews == 0 {
		summary.AverageRating = summary.StaticRating
	}
	return summary, nil
}
