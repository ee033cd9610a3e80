package commands

import (
	"context"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	DisplayName string
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error
	// CompleteOnboarding flips the one-way intro-seen flag; repeated calls
	// are no-ops.
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error {
	displayName, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().UpdateDisplayName(ctx, tx.DB(), userID, displayName.Value()); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (p *profileCommandsImpl) CompleteOnboarding(ctx context.Context, userID uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().CompleteOnboarding(ctx, tx.DB(), userID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
