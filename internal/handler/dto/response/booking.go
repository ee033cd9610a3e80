package response

import (
	"hotelhub/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	HotelID         string  `json:"hotel_id"`
	HotelName       string  `json:"hotel_name"`
	HotelLocation   string  `json:"hotel_location"`
	HotelImageURL   string  `json:"hotel_image_url"`
	NightlyRate     float64 `json:"nightly_rate"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Nights          int32   `json:"nights"`
	Rooms           int32   `json:"rooms"`
	Guests          int32   `json:"guests"`
	Subtotal        float64 `json:"subtotal"`
	ServiceFee      float64 `json:"service_fee"`
	Total           float64 `json:"total"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       int64   `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		HotelID:         v.HotelID.String(),
		HotelName:       v.HotelName,
		HotelLocation:   v.HotelLocation,
		HotelImageURL:   v.HotelImageURL,
		NightlyRate:     v.NightlyRate,
		CheckIn:         v.CheckIn,
		CheckOut:        v.CheckOut,
		Nights:          v.Nights,
		Rooms:           v.Rooms,
		Guests:          v.Guests,
		Subtotal:        v.Subtotal,
		ServiceFee:      v.ServiceFee,
		Total:           v.Total,
		SpecialRequests: v.SpecialRequests,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

type BookingListItemResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	HotelImageURL string  `json:"hotel_image_url"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int32   `json:"nights"`
	Rooms         int32   `json:"rooms"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	CreatedAt     int64   `json:"created_at"`
}

type BookingListResponse struct {
	Bookings   []*BookingListItemResponse `json:"bookings"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{
		Bookings: make([]*BookingListItemResponse, len(items)),
	}
	for i, it := range items {
		res.Bookings[i] = &BookingListItemResponse{
			ID:            it.ID.String(),
			HotelID:       it.HotelID.String(),
			HotelName:     it.HotelName,
			HotelImageURL: it.HotelImageURL,
			CheckIn:       it.CheckIn,
			CheckOut:      it.CheckOut,
			Nights:        it.Nights,
			Rooms:         it.Rooms,
			Total:         it.Total,
			Status:        it.Status,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
