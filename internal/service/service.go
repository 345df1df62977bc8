package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/notify"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/jwt"
)

// Service aggregate of every service
type Service struct {
	Auth         AuthService
	User         UserService
	Courtroom    CourtroomService
	Availability AvailabilityService
	Booking      BookingService
	Appointment  AppointmentService
	Case         CaseService
	Report       ReportService
	Calendar     CalendarService
}

// TokenBlacklist revoked-token store; pkg/redis.Client implements it
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Caller the authenticated identity an operation runs for
type Caller struct {
	UserID string
	Role   model.Role
}

// NewService wires every service. blacklist may be nil when Redis is unavailable.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	catalog *slots.Catalog,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	dispatcher notify.Dispatcher,
	logger *zap.Logger,
) (*Service, error) {
	loc, err := time.LoadLocation(cfg.Slots.Timezone)
	if err != nil {
		return nil, err
	}

	userSvc := NewUserService(repo, logger)
	notifier := newReservationNotifier(userSvc, dispatcher, logger)
	bookingSvc := NewBookingService(repo, catalog, notifier, logger)
	appointmentSvc := NewAppointmentService(repo, catalog, notifier, logger)

	return &Service{
		Auth:         NewAuthService(repo, jwtMgr, blacklist, logger),
		User:         userSvc,
		Courtroom:    NewCourtroomService(repo, logger),
		Availability: NewAvailabilityService(repo, catalog, logger),
		Booking:      bookingSvc,
		Appointment:  appointmentSvc,
		Case:         NewCaseService(repo, catalog, bookingSvc, appointmentSvc, logger),
		Report:       NewReportService(repo, catalog, logger),
		Calendar:     NewCalendarService(repo, loc, time.Duration(cfg.Slots.SlotMinutes)*time.Minute, logger),
	}, nil
}
