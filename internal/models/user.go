package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// User is a user record as held by the user repository. The password hash
// never crosses the API boundary serialized.
type User struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"-"` // bcrypt hash
	Description string `json:"description"`
}

// SafeUser is the outward projection of a user with the password hash removed.
type SafeUser struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Safe returns the projection of the user that may leave the service.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Description: u.Description,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest authenticates by identifier, which may be an email or a username.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries optional profile fields; nil means "leave as is".
type UpdateProfileRequest struct {
	Username    *string `json:"username,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	JWT  string   `json:"jwt"`
	User SafeUser `json:"user"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
