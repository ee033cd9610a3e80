package repository

import (
	"context"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, display_name, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.DisplayName().Value(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, tx db.DBTX, userID uuid.UUID, displayName string) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET display_name = $2, updated_at = now() WHERE id = $1`, userID, displayName)
	if err != nil {
		return infra.WrapRepoErr("failed to update display name", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// CompleteOnboarding only ever sets the flag; there is no way back to false.
func (r *UserRepository) CompleteOnboarding(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET onboarding_completed = TRUE, updated_at = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete onboarding", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
