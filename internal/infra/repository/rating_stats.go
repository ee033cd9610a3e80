package repository

import (
	"context"

	"hotelhub/internal/domain/review"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

const upsertRatingStatsSQL = `
INSERT INTO hotel_rating_stats (
	hotel_id, total_reviews, average_rating,
	rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
ON CONFLICT (hotel_id) DO UPDATE SET
	total_reviews  = EXCLUDED.total_reviews,
	average_rating = EXCLUDED.average_rating,
	rating_1_count = EXCLUDED.rating_1_count,
	rating_2_count = EXCLUDED.rating_2_count,
	rating_3_count = EXCLUDED.rating_3_count,
	rating_4_count = EXCLUDED.rating_4_count,
	rating_5_count = EXCLUDED.rating_5_count,
	updated_at     = now()`

// RecalcHotelRatingStats rebuilds the denormalized stats row from the
// hotel's reviews. The average uses the same rounding as the display layer,
// so the stored value is exactly what clients show.
func (r *RatingStatsRepository) RecalcHotelRatingStats(ctx context.Context, tx db.DBTX, hotelID uuid.UUID) error {
	rows, err := tx.Query(ctx, `SELECT rating FROM reviews WHERE hotel_id = $1`, hotelID)
	if err != nil {
		return infra.WrapRepoErr("failed to load ratings for recalc", err)
	}

	ratings, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return infra.WrapRepoErr("failed to scan ratings for recalc", err)
	}

	var counts [5]int
	for _, rating := range ratings {
		if rating >= 1 && rating <= 5 {
			counts[rating-1]++
		}
	}
	summary := review.Summarize(ratings, 0)

	_, err = tx.Exec(ctx, upsertRatingStatsSQL,
		hotelID,
		summary.Count,
		summary.Average,
		counts[0], counts[1], counts[2], counts[3], counts[4],
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert rating stats", err)
	}
	return nil
}
