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

// AppointmentService lawyer appointment commands
type AppointmentService interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, clientID string) (*dto.AppointmentResponse, error)
	Approve(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, caller Caller, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error)
}

type appointmentService struct {
	repo     *repository.Repository
	catalog  *slots.Catalog
	notifier *reservationNotifier
	logger   *zap.Logger
}

// NewAppointmentService creates an AppointmentService
func NewAppointmentService(repo *repository.Repository, catalog *slots.Catalog, notifier *reservationNotifier, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, catalog: catalog, notifier: notifier, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *appointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest, clientID string) (*dto.AppointmentResponse, error) {
	a := &model.Appointment{
		LawyerID:    strings.TrimSpace(req.LawyerID),
		ClientID:    strings.TrimSpace(clientID),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Description: strings.TrimSpace(req.Description),
		Status:      model.StatusPending,
	}

	if err := requireFields(
		"lawyer_id", a.LawyerID,
		"client_id", a.ClientID,
		"date", a.Date,
		"time", a.Time,
		"description", a.Description,
	); err != nil {
		return nil, err
	}
	if err := validateSlot(s.catalog, a.Date, a.Time); err != nil {
		return nil, err
	}
	if err := requireRole(ctx, s.repo.User, a.LawyerID, model.RoleLawyer); err != nil {
		return nil, err
	}
	if err := requireRole(ctx, s.repo.User, a.ClientID, model.RoleClient); err != nil {
		return nil, err
	}

	if _, err := s.repo.Appointment.FindBySlot(ctx, a.LawyerID, a.Date, a.Time); err == nil {
		return nil, ErrSlotConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check appointment slot failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Appointment.Create(ctx, a); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrSlotConflict
		}
		s.logger.Error("create appointment failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("appointment created",
		zap.String("appointment_id", a.AppointmentID),
		zap.String("lawyer_id", a.LawyerID),
		zap.String("date", a.Date),
		zap.String("time", a.Time),
	)
	s.notifier.appointmentRequested(ctx, a)

	resp := toAppointmentResponse(a)
	return &resp, nil
}

// ────────────────────── Approve ──────────────────────

func (s *appointmentService) Approve(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	if !isUUID(id) {
		return nil, ErrAppointmentNotFound
	}
	a, err := s.repo.Appointment.UpdateStatus(ctx, id, model.StatusConfirmed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("approve appointment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("appointment confirmed", zap.String("appointment_id", a.AppointmentID))
	s.notifier.appointmentConfirmed(ctx, a)

	resp := toAppointmentResponse(a)
	return &resp, nil
}

// ────────────────────── Remove ──────────────────────

func (s *appointmentService) Remove(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrAppointmentNotFound
	}
	deleted, err := s.repo.Appointment.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete appointment failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	s.logger.Info("appointment removed", zap.String("appointment_id", id))
	return nil
}

// ────────────────────── List ──────────────────────

func (s *appointmentService) List(ctx context.Context, caller Caller, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, error) {
	filter, err := scopeAppointmentFilter(caller, req)
	if err != nil {
		return nil, err
	}
	appts, err := s.repo.Appointment.List(ctx, filter)
	if err != nil {
		s.logger.Error("list appointments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		result = append(result, toAppointmentResponse(&appts[i]))
	}
	return result, nil
}

func scopeAppointmentFilter(caller Caller, req *dto.AppointmentListRequest) (repository.AppointmentFilter, error) {
	if err := validateRange(req.From, req.To); err != nil {
		return repository.AppointmentFilter{}, err
	}
	f := repository.AppointmentFilter{
		LawyerID: req.LawyerID,
		ClientID: req.ClientID,
		From:     req.From,
		To:       req.To,
	}
	switch caller.Role {
	case model.RoleLawyer:
		f.LawyerID = caller.UserID
	case model.RoleClient:
		f.ClientID = caller.UserID
	}
	return f, nil
}

func toAppointmentResponse(a *model.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:          a.AppointmentID,
		LawyerID:    a.LawyerID,
		ClientID:    a.ClientID,
		Date:        a.Date,
		Time:        a.Time,
		Description: a.Description,
		Status:      string(a.Status),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}
