//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotelhub/internal/domain/booking"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID          uuid.UUID
	HotelID         uuid.UUID
	HotelName       string
	HotelLocation   string
	HotelImageURL   string
	NightlyRate     float64
	CheckIn         string
	CheckOut        string
	Rooms           int
	Guests          int
	SpecialRequests string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:        uuid.New(),
		HotelID:       uuid.New(),
		HotelName:     "Test Hotel",
		HotelLocation: "Test City",
		HotelImageURL: "https://example.com/hotel.jpg",
		NightlyRate:   100,
		CheckIn:       "2026-03-10",
		CheckOut:      "2026-03-13",
		Rooms:         2,
		Guests:        2,
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Snapshot() dombooking.HotelSnapshot {
	return dombooking.HotelSnapshot{
		ID:          b.HotelID,
		Name:        b.HotelName,
		Location:    b.HotelLocation,
		ImageURL:    b.HotelImageURL,
		NightlyRate: b.NightlyRate,
	}
}

func (b *BookingBuilder) Stay() (dombooking.StayRange, error) {
	checkIn, err := dombooking.ParseDate(b.CheckIn)
	if err != nil {
		return dombooking.StayRange{}, err
	}
	checkOut, err := dombooking.ParseDate(b.CheckOut)
	if err != nil {
		return dombooking.StayRange{}, err
	}
	return dombooking.NewStayRange(checkIn, checkOut)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:         b.HotelID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Rooms:           b.Rooms,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	stay, err := b.Stay()
	nights := int32(3)
	if err == nil {
		nights = int32(stay.Nights())
	}
	subtotal := b.NightlyRate * float64(nights) * float64(b.Rooms)
	fee := subtotal * dombooking.ServiceFeeRate
	return &queries.BookingView{
		ID:              uuid.New(),
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		HotelLocation:   b.HotelLocation,
		HotelImageURL:   b.HotelImageURL,
		NightlyRate:     b.NightlyRate,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          nights,
		Rooms:           int32(b.Rooms),
		Guests:          int32(b.Guests),
		Subtotal:        subtotal,
		ServiceFee:      fee,
		Total:           subtotal + fee,
		SpecialRequests: b.SpecialRequests,
		Status:          "confirmed",
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	view := b.BuildViewQuery()
	return &queries.BookingListItem{
		ID:            view.ID,
		HotelID:       view.HotelID,
		HotelName:     view.HotelName,
		HotelImageURL: view.HotelImageURL,
		CheckIn:       view.CheckIn,
		CheckOut:      view.CheckOut,
		Nights:        view.Nights,
		Rooms:         view.Rooms,
		Total:         view.Total,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.Stay()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(dombooking.CreateParams{
		UserID:          b.UserID,
		Hotel:           b.Snapshot(),
		Stay:            stay,
		Rooms:           b.Rooms,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	})
}
