package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
)

const calendarProductID = "-//court-booking//reservations//EN"

// CalendarService iCalendar export of the caller's reservations
type CalendarService interface {
	Feed(ctx context.Context, caller Caller) ([]byte, error)
}

type calendarService struct {
	repo     *repository.Repository
	loc      *time.Location
	slotSpan time.Duration
	logger   *zap.Logger
}

// NewCalendarService events start at the slot label in loc and last slotSpan
func NewCalendarService(repo *repository.Repository, loc *time.Location, slotSpan time.Duration, logger *zap.Logger) CalendarService {
	if slotSpan <= 0 {
		slotSpan = time.Hour
	}
	return &calendarService{repo: repo, loc: loc, slotSpan: slotSpan, logger: logger}
}

func (s *calendarService) Feed(ctx context.Context, caller Caller) ([]byte, error) {
	bookingFilter, err := scopeBookingFilter(caller, &dto.BookingListRequest{})
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.Booking.List(ctx, bookingFilter)
	if err != nil {
		s.logger.Error("load bookings for calendar failed", zap.Error(err))
		return nil, err
	}

	apptFilter, err := scopeAppointmentFilter(caller, &dto.AppointmentListRequest{})
	if err != nil {
		return nil, err
	}
	appts, err := s.repo.Appointment.List(ctx, apptFilter)
	if err != nil {
		s.logger.Error("load appointments for calendar failed", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	for i := range bookings {
		b := &bookings[i]
		s.addEvent(cal, "booking-"+b.BookingID, b.Date, b.Time, b.Status, b.UpdatedAt,
			"Hearing: "+b.CaseTitle, b.Courtroom,
			fmt.Sprintf("Courtroom booking for %s", b.CaseTitle))
	}
	for i := range appts {
		a := &appts[i]
		s.addEvent(cal, "appointment-"+a.AppointmentID, a.Date, a.Time, a.Status, a.UpdatedAt,
			"Appointment", "", a.Description)
	}

	return []byte(cal.Serialize()), nil
}

func (s *calendarService) addEvent(cal *ics.Calendar, uid, date, label string, status model.ReservationStatus, stamp time.Time, summary, location, description string) {
	start, err := slots.StartOf(date, label, s.loc)
	if err != nil {
		s.logger.Warn("skip calendar entry with unparsable slot",
			zap.String("uid", uid), zap.String("date", date), zap.String("time", label), zap.Error(err))
		return
	}

	event := cal.AddEvent(uid + "@court-booking")
	event.SetDtStampTime(stamp.UTC())
	event.SetStartAt(start)
	event.SetEndAt(start.Add(s.slotSpan))
	event.SetSummary(summary)
	if location != "" {
		event.SetLocation(location)
	}
	if description != "" {
		event.SetDescription(description)
	}
	if status == model.StatusConfirmed {
		event.SetStatus(ics.ObjectStatusConfirmed)
	} else {
		event.SetStatus(ics.ObjectStatusTentative)
	}
}
