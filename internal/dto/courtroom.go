package dto

// CreateCourtroomRequest new courtroom
type CreateCourtroomRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCourtroomRequest rename or (de)activate
type UpdateCourtroomRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
}

// CourtroomListRequest courtroom list query
type CourtroomListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// CourtroomResponse courtroom
type CourtroomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
