package dto

// CreateCaseRequest a missing case number is generated
type CreateCaseRequest struct {
	CaseNumber string   `json:"case_number" binding:"omitempty,max=50"`
	Title      string   `json:"title"       binding:"required,max=200"`
	Court      string   `json:"court"       binding:"required,max=100"`
	Date       string   `json:"date"        binding:"required"`
	Judge      *string  `json:"judge"       binding:"omitempty,max=100"`
	ClientIDs  []string `json:"client_ids"  binding:"omitempty,dive,uuid"`
}

// CaseListRequest case list query
type CaseListRequest struct {
	PaginationRequest
}

// CaseResponse legal case
type CaseResponse struct {
	ID         string   `json:"id"`
	CaseNumber string   `json:"case_number"`
	Title      string   `json:"title"`
	Court      string   `json:"court"`
	Date       string   `json:"date"`
	Judge      *string  `json:"judge,omitempty"`
	LawyerID   string   `json:"lawyer_id"`
	ClientIDs  []string `json:"client_ids"`
	CreatedAt  string   `json:"created_at"`
}

// CreateCaseResponse created case plus the outcome of its calendar placeholders
type CreateCaseResponse struct {
	Case          CaseResponse `json:"case"`
	CalendarNotes []string     `json:"calendar_notes"`
}
