package model

// ReservationStatus approval state; both values hold the slot
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
)

// Booking bookings table: a courtroom slot reserved by a lawyer for a client.
// (courtroom, date, time) is unique.
type Booking struct {
	BookingID string            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"booking_id"`
	LawyerID  string            `gorm:"type:uuid;not null"                                    json:"lawyer_id"`
	ClientID  string            `gorm:"type:uuid;not null"                                    json:"client_id"`
	Courtroom string            `gorm:"type:varchar(100);not null;uniqueIndex:uq_bookings_slot" json:"courtroom"`
	Date      string            `gorm:"type:varchar(10);not null;uniqueIndex:uq_bookings_slot"  json:"date"`
	Time      string            `gorm:"type:varchar(20);not null;uniqueIndex:uq_bookings_slot"  json:"time"`
	CaseTitle string            `gorm:"type:varchar(200);not null"                            json:"case_title"`
	Status    ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'"           json:"status"`
	BaseModel
}

// TableName table name
func (Booking) TableName() string { return "bookings" }

// Appointment appointments table: a lawyer's slot requested by a client.
// (lawyer_id, date, time) is unique.
type Appointment struct {
	AppointmentID string            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"              json:"appointment_id"`
	LawyerID      string            `gorm:"type:uuid;not null;uniqueIndex:uq_appointments_slot"         json:"lawyer_id"`
	ClientID      string            `gorm:"type:uuid;not null"                                          json:"client_id"`
	Date          string            `gorm:"type:varchar(10);not null;uniqueIndex:uq_appointments_slot"  json:"date"`
	Time          string            `gorm:"type:varchar(20);not null;uniqueIndex:uq_appointments_slot"  json:"time"`
	Description   string            `gorm:"type:text;not null"                                          json:"description"`
	Status        ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'"                 json:"status"`
	BaseModel
}

// TableName table name
func (Appointment) TableName() string { return "appointments" }
