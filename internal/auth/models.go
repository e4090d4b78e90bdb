// internal/auth/models.go

package auth

import "time"

// AuthUser is the identity stored for an account.
type AuthUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is returned by sign-in and sign-up.
type Session struct {
	ID        string    `json:"-"`
	Token     string    `json:"token"`
	User      *AuthUser `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Request DTOs

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}
