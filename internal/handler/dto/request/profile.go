package request

import "hotelhub/internal/usecase/commands"

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		DisplayName: r.DisplayName,
	}
}
