package repository

import (
	"context"

	"hotelhub/internal/domain/review"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, user_id, hotel_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.UserID(),
		rev.HotelID(),
		rev.Rating().Value(),
		rev.Comment().String(),
		rev.CreatedAt(),
		rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

const updateReviewSQL = `
UPDATE reviews SET rating = $2, comment = $3, updated_at = $4
WHERE id = $1`

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	tag, err := tx.Exec(ctx, updateReviewSQL, rev.ID(), rev.Rating().Value(), rev.Comment().String(), rev.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
