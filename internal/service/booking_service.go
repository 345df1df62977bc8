package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// BookingService courtroom booking commands
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest, lawyerID string) (*dto.BookingResponse, error)
	Approve(ctx context.Context, id string) (*dto.BookingResponse, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, caller Caller, req *dto.BookingListRequest) ([]dto.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	catalog  *slots.Catalog
	notifier *reservationNotifier
	logger   *zap.Logger
}

// NewBookingService creates a BookingService
func NewBookingService(repo *repository.Repository, catalog *slots.Catalog, notifier *reservationNotifier, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, catalog: catalog, notifier: notifier, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, lawyerID string) (*dto.BookingResponse, error) {
	b := &model.Booking{
		LawyerID:  strings.TrimSpace(lawyerID),
		ClientID:  strings.TrimSpace(req.ClientID),
		Courtroom: strings.TrimSpace(req.Courtroom),
		Date:      strings.TrimSpace(req.Date),
		Time:      strings.TrimSpace(req.Time),
		CaseTitle: strings.TrimSpace(req.CaseTitle),
		Status:    model.StatusPending,
	}

	// 1. shape
	if err := requireFields(
		"lawyer_id", b.LawyerID,
		"client_id", b.ClientID,
		"courtroom", b.Courtroom,
		"date", b.Date,
		"time", b.Time,
		"case_title", b.CaseTitle,
	); err != nil {
		return nil, err
	}
	if err := validateSlot(s.catalog, b.Date, b.Time); err != nil {
		return nil, err
	}

	// 2. referenced rows
	room, err := s.repo.Courtroom.GetByName(ctx, b.Courtroom)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidf("unknown courtroom %q", b.Courtroom)
		}
		return nil, err
	}
	if !room.IsActive {
		return nil, invalidf("courtroom %q is not active", b.Courtroom)
	}
	if err := requireRole(ctx, s.repo.User, b.LawyerID, model.RoleLawyer); err != nil {
		return nil, err
	}
	if err := requireRole(ctx, s.repo.User, b.ClientID, model.RoleClient); err != nil {
		return nil, err
	}

	// 3. friendly pre-check; the unique index is the real guard
	if _, err := s.repo.Booking.FindBySlot(ctx, b.Courtroom, b.Date, b.Time); err == nil {
		return nil, ErrSlotConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check booking slot failed", zap.Error(err))
		return nil, err
	}

	// 4. insert
	if err := s.repo.Booking.Create(ctx, b); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrSlotConflict
		}
		s.logger.Error("create booking failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.BookingID),
		zap.String("courtroom", b.Courtroom),
		zap.String("date", b.Date),
		zap.String("time", b.Time),
	)
	s.notifier.bookingRequested(ctx, b)

	resp := toBookingResponse(b)
	return &resp, nil
}

// ────────────────────── Approve ──────────────────────

// Approve is idempotent; confirming a confirmed booking returns it unchanged
func (s *bookingService) Approve(ctx context.Context, id string) (*dto.BookingResponse, error) {
	if !isUUID(id) {
		return nil, ErrBookingNotFound
	}
	b, err := s.repo.Booking.UpdateStatus(ctx, id, model.StatusConfirmed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("approve booking failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking confirmed", zap.String("booking_id", b.BookingID))
	s.notifier.bookingConfirmed(ctx, b)

	resp := toBookingResponse(b)
	return &resp, nil
}

// ────────────────────── Remove ──────────────────────

func (s *bookingService) Remove(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrBookingNotFound
	}
	deleted, err := s.repo.Booking.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete booking failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	s.logger.Info("booking removed", zap.String("booking_id", id))
	return nil
}

// ────────────────────── List ──────────────────────

func (s *bookingService) List(ctx context.Context, caller Caller, req *dto.BookingListRequest) ([]dto.BookingResponse, error) {
	filter, err := scopeBookingFilter(caller, req)
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, toBookingResponse(&bookings[i]))
	}
	return result, nil
}

// scopeBookingFilter lawyers and clients only ever see their own bookings
func scopeBookingFilter(caller Caller, req *dto.BookingListRequest) (repository.BookingFilter, error) {
	if err := validateRange(req.From, req.To); err != nil {
		return repository.BookingFilter{}, err
	}
	f := repository.BookingFilter{
		LawyerID:  req.LawyerID,
		ClientID:  req.ClientID,
		Courtroom: req.Courtroom,
		From:      req.From,
		To:        req.To,
	}
	switch caller.Role {
	case model.RoleLawyer:
		f.LawyerID = caller.UserID
	case model.RoleClient:
		f.ClientID = caller.UserID
	}
	return f, nil
}

// requireRole the id must name an existing user holding role
func requireRole(ctx context.Context, users repository.UserRepository, id string, role model.Role) error {
	if !isUUID(id) {
		return invalidf("%s id %q is not valid", role, id)
	}
	u, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidf("%s %s not found", role, id)
		}
		return err
	}
	if u.Role != role {
		return invalidf("user %s is not a %s", id, role)
	}
	return nil
}

func toBookingResponse(b *model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        b.BookingID,
		LawyerID:  b.LawyerID,
		ClientID:  b.ClientID,
		Courtroom: b.Courtroom,
		Date:      b.Date,
		Time:      b.Time,
		CaseTitle: b.CaseTitle,
		Status:    string(b.Status),
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}
