package readstore

import (
	"context"
	"errors"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userViewColumns = `id, email, display_name, role, onboarding_completed, is_active`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := s.db.QueryRow(ctx, `SELECT `+userViewColumns+` FROM users WHERE id = $1`, id).Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.Role,
		&view.OnboardingCompleted,
		&view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := s.db.QueryRow(ctx, `SELECT `+userViewColumns+`, password_hash FROM users WHERE email = $1`, email).Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.Role,
		&view.OnboardingCompleted,
		&view.IsActive,
		&passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return view, passwordHash, nil
}
