package response

import (
	"time"

	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SignupResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	UserID      uuid.UUID `json:"userId"`
	AccessToken string    `json:"accessToken"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		LastLogin: v.LastLogin,
	}
}
