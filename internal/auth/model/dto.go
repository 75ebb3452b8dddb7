// Package model provides DTOs and errors for the auth module.
package model

// RegisterRequest represents the registration request body.
// Role, name and surname are optional; role defaults to "user".
type RegisterRequest struct {
	Email    string  `json:"email"    binding:"required"`
	Password string  `json:"password" binding:"required"`
	Role     string  `json:"role"`
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// WhoamiResponse represents the protected identity endpoint response.
type WhoamiResponse struct {
	Email string `json:"email"`
}
