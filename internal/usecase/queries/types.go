package queries

import (
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")

	RoleGuest = "guest"
	RoleAdmin = "admin"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	DisplayName         string    `json:"display_name"`
	Role                string    `json:"role"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	IsActive            bool      `json:"is_active"`
}
