package response

import (
	"time"

	"eventlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		LastLogin: v.LastLogin,
		CreatedAt: v.CreatedAt,
	}
}
