package queries

import (
	"context"
	"time"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Aliased to the shared sentinels so errors.Is matches across layers.
var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrBookingAccess   = errs.ErrBookingAccess
)

// BookingView is the full record shown on the confirmation and detail
// screens, including the hotel attributes frozen at booking time.
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	HotelLocation   string    `json:"hotel_location"`
	HotelImageURL   string    `json:"hotel_image_url"`
	NightlyRate     float64   `json:"nightly_rate"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int32     `json:"nights"`
	Rooms           int32     `json:"rooms"`
	Guests          int32     `json:"guests"`
	Subtotal        float64   `json:"subtotal"`
	ServiceFee      float64   `json:"service_fee"`
	Total           float64   `json:"total"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	HotelID       uuid.UUID `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	HotelImageURL string    `json:"hotel_image_url"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Nights        int32     `json:"nights"`
	Rooms         int32     `json:"rooms"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error)
	// GetByIDSystem skips the ownership check; used for read-after-write
	// inside the create flow.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != RoleAdmin && view.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByUser pages newest first so a fresh booking is at the top of the
// trips screen.
func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
