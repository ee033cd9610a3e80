package readstore

import (
	"context"
	"errors"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// bookingRow mirrors the bookings table. Stay bounds are DATE columns that
// scan as midnight UTC instants and are re-emitted as calendar dates on the
// view.
type bookingRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	HotelID         uuid.UUID `db:"hotel_id"`
	HotelName       string    `db:"hotel_name"`
	HotelLocation   string    `db:"hotel_location"`
	HotelImageURL   string    `db:"hotel_image_url"`
	NightlyRate     float64   `db:"nightly_rate"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Nights          int32     `db:"nights"`
	Rooms           int32     `db:"rooms"`
	Guests          int32     `db:"guests"`
	Subtotal        float64   `db:"subtotal"`
	ServiceFee      float64   `db:"service_fee"`
	Total           float64   `db:"total"`
	SpecialRequests string    `db:"special_requests"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

const bookingViewColumns = `
	id, user_id, hotel_id, hotel_name, hotel_location, hotel_image_url,
	nightly_rate, check_in, check_out, nights, rooms, guests,
	subtotal, service_fee, total, special_requests, status, created_at`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, `SELECT`+bookingViewColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return bookingRowToView(row)
}

const bookingListSQL = `
SELECT id, hotel_id, hotel_name, hotel_image_url, check_in, check_out,
	nights, rooms, total, status, created_at
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

const bookingListKeysetSQL = `
SELECT id, hotel_id, hotel_name, hotel_image_url, check_in, check_out,
	nights, rooms, total, status, created_at
FROM bookings
WHERE user_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type bookingListRow struct {
	ID            uuid.UUID `db:"id"`
	HotelID       uuid.UUID `db:"hotel_id"`
	HotelName     string    `db:"hotel_name"`
	HotelImageURL string    `db:"hotel_image_url"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Nights        int32     `db:"nights"`
	Rooms         int32     `db:"rooms"`
	Total         float64   `db:"total"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

func (s *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, bookingListSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return collectBookingListItems(rows)
}

func (s *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, bookingListKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return collectBookingListItems(rows)
}

func collectBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	rawRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookingListRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking list", err)
	}
	items := make([]*queries.BookingListItem, 0, len(rawRows))
	for _, row := range rawRows {
		item := &queries.BookingListItem{}
		if err := copier.Copy(item, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to map booking list row", err)
		}
		item.CheckIn = booking.DateOf(row.CheckIn.UTC()).String()
		item.CheckOut = booking.DateOf(row.CheckOut.UTC()).String()
		items = append(items, item)
	}
	return items, nil
}

func bookingRowToView(row bookingRow) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map booking row", err)
	}
	view.CheckIn = booking.DateOf(row.CheckIn.UTC()).String()
	view.CheckOut = booking.DateOf(row.CheckOut.UTC()).String()
	return view, nil
}
