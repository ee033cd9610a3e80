package readstore

import (
	"context"
	"errors"
	"time"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/queries"
	"hotelhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewSQL = `
SELECT r.id, r.user_id, u.display_name AS user_name, r.hotel_id, h.name AS hotel_name,
	r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
JOIN hotels h ON h.id = r.hotel_id
WHERE r.id = $1`

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewViewSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	view, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[queries.ReviewView])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan review view", err)
	}
	return view, nil
}

const reviewsByHotelFirstPageSQL = `
SELECT r.id, u.display_name AS user_name, r.rating, r.comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.hotel_id = $1
	AND ($2::int IS NULL OR r.rating >= $2)
	AND ($3::int IS NULL OR r.rating <= $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

const reviewsByHotelKeysetSQL = `
SELECT r.id, u.display_name AS user_name, r.rating, r.comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.hotel_id = $1
	AND (r.created_at, r.id) < ($2, $3)
	AND ($4::int IS NULL OR r.rating >= $4)
	AND ($5::int IS NULL OR r.rating <= $5)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $6`

func (s *ReviewReadStore) FindByHotelFirstPage(ctx context.Context, hotelID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	rows, err := s.db.Query(ctx, reviewsByHotelFirstPageSQL, hotelID, minRating, maxRating, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by hotel", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[queries.ReviewListItem])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan review list", err)
	}
	return items, nil
}

func (s *ReviewReadStore) FindByHotelKeyset(ctx context.Context, hotelID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	rows, err := s.db.Query(ctx, reviewsByHotelKeysetSQL, hotelID, lastCreatedAt, lastID, minRating, maxRating, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by hotel", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[queries.ReviewListItem])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan review list", err)
	}
	return items, nil
}

// The LEFT JOIN keeps hotels without a stats row visible; COALESCE turns the
// missing row into zero counts and the hotel's static rating rides along for
// the fallback decision upstream.
const hotelRatingSummarySQL = `
SELECT h.id AS hotel_id,
	COALESCE(s.total_reviews, 0)  AS total_reviews,
	COALESCE(s.average_rating, 0) AS average_rating,
	h.rating                      AS static_rating,
	COALESCE(s.rating_1_count, 0) AS rating_1_count,
	COALESCE(s.rating_2_count, 0) AS rating_2_count,
	COALESCE(s.rating_3_count, 0) AS rating_3_count,
	COALESCE(s.rating_4_count, 0) AS rating_4_count,
	COALESCE(s.rating_5_count, 0) AS rating_5_count,
	COALESCE(s.updated_at, h.updated_at) AS updated_at
FROM hotels h
LEFT JOIN hotel_rating_stats s ON s.hotel_id = h.id
WHERE h.id = $1`

func (s *ReviewReadStore) GetHotelRatingSummary(ctx context.Context, hotelID uuid.UUID) (*queries.HotelRatingSummary, error) {
	summary := &queries.HotelRatingSummary{}
	err := s.db.QueryRow(ctx, hotelRatingSummarySQL, hotelID).Scan(
		&summary.HotelID,
		&summary.TotalReviews,
		&summary.AverageRating,
		&summary.StaticRating,
		&summary.Rating1Count,
		&summary.Rating2Count,
		&summary.Rating3Count,
		&summary.Rating4Count,
		&summary.Rating5Count,
		&summary.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel rating summary", err)
	}
	return summary, nil
}

// ReviewSnapshotByID serves command-side ownership checks.
func ReviewSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap := &shared.ReviewSnapshot{}
	err := dbtx.QueryRow(ctx,
		`SELECT id, user_id, hotel_id FROM reviews WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.UserID, &snap.HotelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review snapshot", err)
	}
	return snap, nil
}
