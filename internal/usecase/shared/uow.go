package shared

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/review"
	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
}

// Minimal snapshots for command-side validation; the read side has its own
// richer views.
type HotelSnapshot struct {
	ID          uuid.UUID
	Name        string
	Location    string
	ImageURL    string
	NightlyRate float64
	Rating      float64
}

type ReviewSnapshot struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	HotelID uuid.UUID
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcHotelRatingStats(ctx context.Context, tx db.DBTX, hotelID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	UpdateDisplayName(ctx context.Context, tx db.DBTX, userID uuid.UUID, displayName string) error
	CompleteOnboarding(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
