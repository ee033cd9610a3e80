package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoRooms  = errors.New("need at least one room")
	ErrNoGuests = errors.New("need at least one guest")
)

// HotelSnapshot freezes the hotel attributes that priced the stay. The
// catalog entry may change later; the record keeps what the guest agreed to.
type HotelSnapshot struct {
	ID          uuid.UUID
	Name        string
	Location    string
	ImageURL    string
	NightlyRate float64
}

// Booking is immutable once created: the repository persists it verbatim and
// it is only ever read back afterwards.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	hotel           HotelSnapshot
	stay            StayRange
	rooms           int
	guests          int
	price           PriceBreakdown
	specialRequests string
	status          Status
	createdAt       time.Time
}

type CreateParams struct {
	UserID          uuid.UUID
	Hotel           HotelSnapshot
	Stay            StayRange
	Rooms           int
	Guests          int
	SpecialRequests string
	CreatedAt       time.Time
}

// NewBooking validates in the same order the form does: date range first,
// then rooms, then guests. The id assigned here is canonical; the repository
// persists it as-is and no alternate id is ever minted for the confirmation
// view.
func NewBooking(params CreateParams) (*Booking, error) {
	if params.Stay == (StayRange{}) {
		return nil, ErrInvalidStayRange
	}
	if params.Rooms < 1 {
		return nil, ErrNoRooms
	}
	if params.Guests < 1 {
		return nil, ErrNoGuests
	}
	if params.Hotel.NightlyRate < 0 {
		return nil, ErrNegativeRate
	}

	return &Booking{
		id:              uuid.New(),
		userID:          params.UserID,
		hotel:           params.Hotel,
		stay:            params.Stay,
		rooms:           params.Rooms,
		guests:          params.Guests,
		price:           Breakdown(params.Hotel.NightlyRate, params.Stay.Nights(), params.Rooms),
		specialRequests: strings.TrimSpace(params.SpecialRequests),
		status:          StatusConfirmed,
		createdAt:       params.CreatedAt.UTC(),
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) Hotel() HotelSnapshot    { return b.hotel }
func (b *Booking) Stay() StayRange         { return b.stay }
func (b *Booking) Nights() int             { return b.stay.Nights() }
func (b *Booking) Rooms() int              { return b.rooms }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) Price() PriceBreakdown   { return b.price }
func (b *Booking) SpecialRequests() string { return b.specialRequests }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
