package readstore

import (
	"context"
	"errors"

	"hotelhub/internal/domain/hotel"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/queries"
	"hotelhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

// Listings show the live review average once reviews exist and the static
// catalog rating before that, so the computed rating column is what every
// filter and sort works against.
const hotelSearchSQL = `
SELECT * FROM (
	SELECT h.id, h.name, h.location, h.image_url, h.nightly_rate,
		CASE WHEN COALESCE(s.total_reviews, 0) > 0 THEN s.average_rating ELSE h.rating END AS rating,
		COALESCE(s.total_reviews, 0) AS review_count
	FROM hotels h
	LEFT JOIN hotel_rating_stats s ON s.hotel_id = h.id
) x
WHERE ($1 = '' OR x.name ILIKE '%' || $1 || '%' OR x.location ILIKE '%' || $1 || '%')
	AND ($2::float8 IS NULL OR x.nightly_rate >= $2)
	AND ($3::float8 IS NULL OR x.nightly_rate <= $3)
	AND ($4::float8 IS NULL OR x.rating >= $4)
`

func (s *HotelReadStore) Search(ctx context.Context, filter hotel.SearchFilter, limit int32) ([]*queries.HotelListItem, error) {
	rows, err := s.db.Query(ctx, hotelSearchSQL+orderClause(filter.Sort)+` LIMIT $5`,
		filter.Query, filter.MinPrice, filter.MaxPrice, filter.MinRating, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search hotels", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[queries.HotelListItem])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotel list", err)
	}
	return items, nil
}

// orderClause maps a validated SortKey to SQL; the key never carries user
// input directly.
func orderClause(sort hotel.SortKey) string {
	switch sort {
	case hotel.SortPriceAsc:
		return ` ORDER BY x.nightly_rate ASC, x.name ASC`
	case hotel.SortPriceDesc:
		return ` ORDER BY x.nightly_rate DESC, x.name ASC`
	case hotel.SortNameAsc:
		return ` ORDER BY x.name ASC`
	default:
		return ` ORDER BY x.rating DESC, x.name ASC`
	}
}

const hotelDetailSQL = `
SELECT h.id, h.name, h.location, h.description, h.image_url, h.nightly_rate,
	CASE WHEN COALESCE(s.total_reviews, 0) > 0 THEN s.average_rating ELSE h.rating END AS rating,
	h.amenities,
	COALESCE(s.total_reviews, 0) AS review_count,
	h.created_at, h.updated_at
FROM hotels h
LEFT JOIN hotel_rating_stats s ON s.hotel_id = h.id
WHERE h.id = $1`

func (s *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelDetailView, error) {
	view := &queries.HotelDetailView{}
	err := s.db.QueryRow(ctx, hotelDetailSQL, id).Scan(
		&view.ID,
		&view.Name,
		&view.Location,
		&view.Description,
		&view.ImageURL,
		&view.NightlyRate,
		&view.Rating,
		&view.Amenities,
		&view.ReviewCount,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel detail", err)
	}
	return view, nil
}

// HotelSnapshotByID serves the booking flow: the returned attributes are
// frozen onto the booking record.
func HotelSnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.HotelSnapshot, error) {
	snap := &shared.HotelSnapshot{}
	err := dbtx.QueryRow(ctx,
		`SELECT id, name, location, image_url, nightly_rate, rating FROM hotels WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Name, &snap.Location, &snap.ImageURL, &snap.NightlyRate, &snap.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel snapshot", err)
	}
	return snap, nil
}
