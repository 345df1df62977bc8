package dto

// ── bookings ──

// CreateBookingRequest the lawyer comes from the caller's token
type CreateBookingRequest struct {
	ClientID  string `json:"client_id"  binding:"required"`
	Courtroom string `json:"courtroom"  binding:"required"`
	Date      string `json:"date"       binding:"required"`
	Time      string `json:"time"       binding:"required"`
	CaseTitle string `json:"case_title" binding:"required,max=200"`
}

// BookingListRequest booking list / report filter
type BookingListRequest struct {
	LawyerID  string `form:"lawyer_id"`
	ClientID  string `form:"client_id"`
	Courtroom string `form:"courtroom"`
	From      string `form:"from"`
	To        string `form:"to"`
}

// BookingResponse booking
type BookingResponse struct {
	ID        string `json:"id"`
	LawyerID  string `json:"lawyer_id"`
	ClientID  string `json:"client_id"`
	Courtroom string `json:"courtroom"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CaseTitle string `json:"case_title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ── appointments ──

// CreateAppointmentRequest the client comes from the caller's token
type CreateAppointmentRequest struct {
	LawyerID    string `json:"lawyer_id"   binding:"required"`
	Date        string `json:"date"        binding:"required"`
	Time        string `json:"time"        binding:"required"`
	Description string `json:"description" binding:"required,max=2000"`
}

// AppointmentListRequest appointment list / report filter
type AppointmentListRequest struct {
	LawyerID string `form:"lawyer_id"`
	ClientID string `form:"client_id"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// AppointmentResponse appointment
type AppointmentResponse struct {
	ID          string `json:"id"`
	LawyerID    string `json:"lawyer_id"`
	ClientID    string `json:"client_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
