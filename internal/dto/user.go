package dto

// UserListRequest user list query
type UserListRequest struct {
	PaginationRequest
	Role string `form:"role" binding:"omitempty,oneof=admin lawyer client"`
}

// UserResponse user without credentials
type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	Role           string  `json:"role"`
	Specialization *string `json:"specialization,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
