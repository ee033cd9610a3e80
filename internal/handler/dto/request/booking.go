package request

import (
	"hotelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HotelID         uuid.UUID `json:"hotel_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"required"`
	CheckOut        string    `json:"check_out" binding:"required"`
	Rooms           int       `json:"rooms" binding:"required,min=1"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests" binding:"max=500"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		HotelID:         r.HotelID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Rooms:           r.Rooms,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}
}
