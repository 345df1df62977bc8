package dto

// ── auth DTOs ──

// SignupRequest self-registration; admins are seeded, never self-registered
type SignupRequest struct {
	Name           string  `json:"name"           binding:"required,min=2,max=100"`
	Username       string  `json:"username"       binding:"required,min=3,max=50"`
	Password       string  `json:"password"       binding:"required,min=6,max=72"`
	Role           string  `json:"role"           binding:"required,oneof=lawyer client"`
	Email          *string `json:"email"          binding:"omitempty,email"`
	Phone          *string `json:"phone"          binding:"omitempty,max=32"`
	Specialization *string `json:"specialization" binding:"omitempty,max=100"`
}

// LoginRequest login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse token pair
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}
