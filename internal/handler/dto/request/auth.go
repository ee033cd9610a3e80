package request

import "hotelhub/internal/usecase/commands"

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

func (r *SignupRequest) ToCommand() commands.SignupRequest {
	return commands.SignupRequest{
		Email:       r.Email,
		Password:    r.Password,
		DisplayName: r.DisplayName,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}
