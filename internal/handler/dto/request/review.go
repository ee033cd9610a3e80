package request

import (
	"hotelhub/internal/pkg/patch"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	HotelID uuid.UUID `json:"hotel_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		HotelID: r.HotelID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

// ToCommand fills unset fields from the existing review so partial updates
// keep the other field intact.
func (r *UpdateReviewRequest) ToCommand(existing *queries.ReviewView) commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{
		Rating:  patch.Coalesce(r.Rating, int(existing.Rating)),
		Comment: patch.Coalesce(r.Comment, existing.Comment),
	}
}
