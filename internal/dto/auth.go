package dto

import "github.com/luizndev/unime-pdr/internal/model"

// RegisterRequest — POST /auth/register payload.
// ConfirmPassword is deliberately not binding-required: a missing
// confirmation is reported as a password mismatch, matching the
// historical behavior of the API.
type RegisterRequest struct {
	Name            string `json:"name"            binding:"required"`
	Email           string `json:"email"           binding:"required"`
	Password        string `json:"password"        binding:"required"`
	ConfirmPassword string `json:"confirmpassword"`
	Role            string `json:"role"`
}

// LoginRequest — POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse — successful login body: bearer token plus the user id the
// front end stores alongside it.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

// UserResponse — GET /auth/:id body.
type UserResponse struct {
	User *model.User `json:"user"`
}
