package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/internal/pkg/password"
	"hotelhub/internal/usecase/queries"
	"hotelhub/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignupRequest struct {
	Email       string
	Password    string
	DisplayName string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	rawPassword, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	displayName, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(rawPassword.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, displayName, user.RoleGuest)

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(createdID, user.RoleGuest)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{UserID: createdID, Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	view, err := a.validateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// Login already succeeded; a stale last_login is not worth failing it
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &AuthResult{UserID: view.ID, Token: token}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, req LoginRequest) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
