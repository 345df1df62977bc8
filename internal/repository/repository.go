package repository

import "gorm.io/gorm"

// Repository aggregate of every repository
type Repository struct {
	User        UserRepository
	Courtroom   CourtroomRepository
	Booking     BookingRepository
	Appointment AppointmentRepository
	Case        CaseRepository
}

// NewRepository builds the aggregate over one connection pool
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Courtroom:   NewCourtroomRepo(db),
		Booking:     NewBookingRepo(db),
		Appointment: NewAppointmentRepo(db),
		Case:        NewCaseRepo(db),
	}
}
