package commands

import (
	"context"

	domreview "hotelhub/internal/domain/review"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"
	"hotelhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by user")
	ErrReviewNotFoundWrite = errs.New("review not found")
)

type CreateReviewRequest struct {
	HotelID uuid.UUID
	Rating  int
	Comment string
}

type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview persists the review and recalculates the hotel's rating
// stats in the same transaction, so the displayed average never lags.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rev, err := domreview.NewReview(uuid.Nil, userID, req.HotelID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := uc.uow.CommandReads().HotelByID(ctx, req.HotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return tx.RatingStats().RecalcHotelRatingStats(ctx, tx.DB(), req.HotelID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		now := uc.clock.Now()
		agg := domreview.ReconstructReview(snap.ID, snap.UserID, snap.HotelID, rating, comment, now, now)
		if derr = tx.Reviews().Update(ctx, tx.DB(), agg); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return tx.RatingStats().RecalcHotelRatingStats(ctx, tx.DB(), snap.HotelID)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if actorRole != queries.RoleAdmin && snap.UserID != actorID {
			return ErrReviewNotOwned
		}
		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return tx.RatingStats().RecalcHotelRatingStats(ctx, tx.DB(), snap.HotelID)
	})
}
