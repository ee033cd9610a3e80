package response

import (
	"hotelhub/internal/usecase/queries"
)

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type UserResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	DisplayName         string `json:"display_name"`
	Role                string `json:"role"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:                  v.ID.String(),
		Email:               v.Email,
		DisplayName:         v.DisplayName,
		Role:                v.Role,
		OnboardingCompleted: v.OnboardingCompleted,
	}
}
