//go:build unit || e2e

package builder

import (
	"hotelhub/internal/domain/user"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email               string
	Password            string
	PasswordHash        string
	DisplayName         string
	Role                string
	OnboardingCompleted bool
	IsActive            bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		DisplayName:  "Test User",
		Role:         "guest",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	displayName, err := user.NewDisplayName(u.DisplayName)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordHash, displayName, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:                  uuid.New(),
		Email:               u.Email,
		DisplayName:         u.DisplayName,
		Role:                u.Role,
		OnboardingCompleted: u.OnboardingCompleted,
		IsActive:            u.IsActive,
	}
}

func (u *UserBuilder) BuildSignupRequestDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:       u.Email,
		Password:    u.Password,
		DisplayName: u.DisplayName,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
