package dto

import (
	"time"

	"github.com/VictorHerdz10/ACRP-API/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	NameFull string `json:"nameFull"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse returns the issued bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateRoleRequest payload for role assignment.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse is the account shape exposed to admins.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	NameFull  string    `json:"nameFull"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileResponse is the caller's own reduced account view.
type ProfileResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	NameFull string `json:"nameFull"`
}

// NewUserResponse maps a user record to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		NameFull:  user.NameFull,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewProfileResponse maps a user record to the profile shape.
func NewProfileResponse(user *domain.User) ProfileResponse {
	return ProfileResponse{
		Email:    user.Email,
		Username: user.Username,
		NameFull: user.NameFull,
	}
}
