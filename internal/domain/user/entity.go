package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Covers auth, the profile screen, and the onboarding flag.
type User struct {
	id                  uuid.UUID
	email               Email
	passwordHash        string
	displayName         DisplayName
	role                Role
	onboardingCompleted bool
	lastLogin           *time.Time
	isActive            bool
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUser(email Email, passwordHash string, displayName DisplayName, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		isActive:     true,
	}
}

// CompleteOnboarding marks the intro flow as seen. The flag never reverts;
// completing twice is a no-op.
func (u *User) CompleteOnboarding() {
	u.onboardingCompleted = true
}

func (u *User) Rename(name DisplayName) {
	u.displayName = name
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) Role() Role               { return u.role }
func (u *User) OnboardingCompleted() bool {
	return u.onboardingCompleted
}
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
