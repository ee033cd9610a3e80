package repository

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, user_id, hotel_id, hotel_name, hotel_location, hotel_image_url,
	nightly_rate, check_in, check_out, nights, rooms, guests,
	subtotal, service_fee, total, special_requests, status, created_at
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.UserID(),
		b.Hotel().ID,
		b.Hotel().Name,
		b.Hotel().Location,
		b.Hotel().ImageURL,
		b.Hotel().NightlyRate,
		b.Stay().CheckIn().Time(),
		b.Stay().CheckOut().Time(),
		b.Nights(),
		b.Rooms(),
		b.Guests(),
		b.Price().Subtotal,
		b.Price().ServiceFee,
		b.Price().Total,
		b.SpecialRequests(),
		b.Status().String(),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
