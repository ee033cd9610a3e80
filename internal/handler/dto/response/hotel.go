package response

import (
	"hotelhub/internal/usecase/queries"
)

type HotelListItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	ImageURL    string  `json:"image_url"`
	NightlyRate float64 `json:"nightly_rate"`
	Rating      float64 `json:"rating"`
	ReviewCount int32   `json:"review_count"`
}

type HotelListResponse struct {
	Hotels []*HotelListItemResponse `json:"hotels"`
}

func FromHotelList(items []*queries.HotelListItem) *HotelListResponse {
	res := &HotelListResponse{
		Hotels: make([]*HotelListItemResponse, len(items)),
	}
	for i, it := range items {
		res.Hotels[i] = &HotelListItemResponse{
			ID:          it.ID.String(),
			Name:        it.Name,
			Location:    it.Location,
			ImageURL:    it.ImageURL,
			NightlyRate: it.NightlyRate,
			Rating:      it.Rating,
			ReviewCount: it.ReviewCount,
		}
	}
	return res
}

type WeatherResponse struct {
	TempCelsius float64 `json:"temp_celsius"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

type HotelDetailResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Location    string           `json:"location"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	NightlyRate float64          `json:"nightly_rate"`
	Rating      float64          `json:"rating"`
	Amenities   []string         `json:"amenities"`
	ReviewCount int32            `json:"review_count"`
	Weather     *WeatherResponse `json:"weather,omitempty"`
}

func FromHotelDetail(v *queries.HotelDetailView) *HotelDetailResponse {
	res := &HotelDetailResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		NightlyRate: v.NightlyRate,
		Rating:      v.Rating,
		Amenities:   v.Amenities,
		ReviewCount: v.ReviewCount,
	}
	if v.Weather != nil {
		res.Weather = &WeatherResponse{
			TempCelsius: v.Weather.TempCelsius,
			Condition:   v.Weather.Condition,
			Icon:        v.Weather.Icon,
		}
	}
	return res
}
