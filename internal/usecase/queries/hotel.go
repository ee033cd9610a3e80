package queries

import (
	"context"
	"time"

	"hotelhub/internal/domain/hotel"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Same object as commands.ErrHotelNotFound, via the shared sentinel.
var ErrHotelNotFound = errs.ErrHotelNotFound

type HotelListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	NightlyRate float64   `json:"nightly_rate"`
	Rating      float64   `json:"rating"`
	ReviewCount int32     `json:"review_count"`
}

type HotelDetailView struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	NightlyRate float64      `json:"nightly_rate"`
	Rating      float64      `json:"rating"`
	Amenities   []string     `json:"amenities"`
	ReviewCount int32        `json:"review_count"`
	Weather     *WeatherInfo `json:"weather,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type WeatherInfo struct {
	TempCelsius float64 `json:"temp_celsius"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

// WeatherProvider returns current conditions for a location, or nil when
// the upstream service is unavailable. Weather is decoration on the detail
// screen; its failures never fail the request.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, location string) *WeatherInfo
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelDetailView, error)
	Search(ctx context.Context, filter hotel.SearchFilter, limit int32) ([]*HotelListItem, error)
}

type HotelQueries interface {
	Search(ctx context.Context, filter hotel.SearchFilter, limit int) ([]*HotelListItem, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*HotelDetailView, error)
}

type hotelQueriesImpl struct {
	repo    HotelReadStore
	weather WeatherProvider
}

func NewHotelQueries(repo HotelReadStore, weather WeatherProvider) HotelQueries {
	return &hotelQueriesImpl{repo: repo, weather: weather}
}

func (q *hotelQueriesImpl) Search(ctx context.Context, filter hotel.SearchFilter, limit int) ([]*HotelListItem, error) {
	return q.repo.Search(ctx, filter, int32(ValidateLimit(limit)))
}

func (q *hotelQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*HotelDetailView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if q.weather != nil {
		view.Weather = q.weather.CurrentWeather(ctx, view.Location)
	}
	return view, nil
}
