package handler

import "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"

// Handler aggregate of every HTTP handler
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Courtroom    *CourtroomHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Appointment  *AppointmentHandler
	Case         *CaseHandler
	Report       *ReportHandler
	Calendar     *CalendarHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Courtroom:    NewCourtroomHandler(svc.Courtroom),
		Availability: NewAvailabilityHandler(svc.Availability),
		Booking:      NewBookingHandler(svc.Booking),
		Appointment:  NewAppointmentHandler(svc.Appointment),
		Case:         NewCaseHandler(svc.Case),
		Report:       NewReportHandler(svc.Report),
		Calendar:     NewCalendarHandler(svc.Calendar),
	}
}
