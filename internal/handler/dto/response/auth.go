package response

import (
	"party-rental/internal/usecase/commands"
	"party-rental/internal/usecase/queries"
)

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int64        `json:"expiresIn"`
	User        UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       v.ID.String(),
		Email:    v.Email,
		Name:     v.Name,
		Role:     v.Role.String(),
		IsActive: v.IsActive,
	}
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		User:        FromUserView(r.User),
	}
}
