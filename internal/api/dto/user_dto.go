package dto

import (
	"time"

	"github.com/spec-kit/clothes-service/internal/domain"
)

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=120"`
	Password string  `json:"password" validate:"required,min=6,maxbytes=72"`
	FullName string  `json:"full_name" validate:"required,min=3,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=13"`
	Role     string  `json:"role" validate:"omitempty,oneof=user admin super_admin"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID             int64       `json:"id"`
	Email          string      `json:"email"`
	FullName       string      `json:"full_name"`
	Phone          *string     `json:"phone"`
	Role           domain.Role `json:"role"`
	CreatedAt      time.Time   `json:"created_at"`
	LastModifiedAt time.Time   `json:"last_modified_at"`
}

// RegisterResponse is returned by registration: the user fields flattened
// alongside the session.
type RegisterResponse struct {
	UserResponse
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// NewUserResponse maps a domain user, dropping the password hash.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		LastModifiedAt: u.LastModifiedAt,
	}
}
