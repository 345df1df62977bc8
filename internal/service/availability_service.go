package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
)

// AvailabilityService read-only slot grids. Pending and confirmed reservations
// both make a slot unavailable.
type AvailabilityService interface {
	Courtroom(ctx context.Context, courtroom, date string) (*dto.ResourceAvailability, error)
	Courtrooms(ctx context.Context, date string) ([]dto.ResourceAvailability, error)
	Lawyer(ctx context.Context, lawyerID, date string) (*dto.ResourceAvailability, error)
}

type availabilityService struct {
	repo    *repository.Repository
	catalog *slots.Catalog
	logger  *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService
func NewAvailabilityService(repo *repository.Repository, catalog *slots.Catalog, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, catalog: catalog, logger: logger}
}

func (s *availabilityService) Courtroom(ctx context.Context, courtroom, date string) (*dto.ResourceAvailability, error) {
	courtroom = strings.TrimSpace(courtroom)
	if err := requireFields("courtroom", courtroom, "date", date); err != nil {
		return nil, err
	}
	if _, err := slots.ParseDate(date); err != nil {
		return nil, invalidf("date must be a valid YYYY-MM-DD date")
	}

	bookings, err := s.repo.Booking.ListByResourceAndDate(ctx, courtroom, date)
	if err != nil {
		s.logger.Error("list bookings failed", zap.String("courtroom", courtroom), zap.String("date", date), zap.Error(err))
		return nil, err
	}

	taken := make([]string, 0, len(bookings))
	for _, b := range bookings {
		taken = append(taken, b.Time)
	}
	return &dto.ResourceAvailability{
		Resource: courtroom,
		Date:     date,
		Slots:    s.catalog.Availability(taken),
	}, nil
}

// Courtrooms every active courtroom, ordered by name
func (s *availabilityService) Courtrooms(ctx context.Context, date string) ([]dto.ResourceAvailability, error) {
	if err := requireFields("date", date); err != nil {
		return nil, err
	}
	if _, err := slots.ParseDate(date); err != nil {
		return nil, invalidf("date must be a valid YYYY-MM-DD date")
	}

	rooms, err := s.repo.Courtroom.List(ctx, false)
	if err != nil {
		s.logger.Error("list courtrooms failed", zap.Error(err))
		return nil, err
	}
	bookings, err := s.repo.Booking.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("list bookings failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	taken := make(map[string][]string, len(rooms))
	for _, b := range bookings {
		taken[b.Courtroom] = append(taken[b.Courtroom], b.Time)
	}

	result := make([]dto.ResourceAvailability, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, dto.ResourceAvailability{
			Resource: r.Name,
			Date:     date,
			Slots:    s.catalog.Availability(taken[r.Name]),
		})
	}
	return result, nil
}

func (s *availabilityService) Lawyer(ctx context.Context, lawyerID, date string) (*dto.ResourceAvailability, error) {
	lawyerID = strings.TrimSpace(lawyerID)
	if err := requireFields("lawyer_id", lawyerID, "date", date); err != nil {
		return nil, err
	}
	if _, err := slots.ParseDate(date); err != nil {
		return nil, invalidf("date must be a valid YYYY-MM-DD date")
	}

	var taken []string
	if isUUID(lawyerID) {
		appts, err := s.repo.Appointment.ListByResourceAndDate(ctx, lawyerID, date)
		if err != nil {
			s.logger.Error("list appointments failed", zap.String("lawyer_id", lawyerID), zap.String("date", date), zap.Error(err))
			return nil, err
		}
		for _, a := range appts {
			taken = append(taken, a.Time)
		}
	}

	return &dto.ResourceAvailability{
		Resource: lawyerID,
		Date:     date,
		Slots:    s.catalog.Availability(taken),
	}, nil
}
