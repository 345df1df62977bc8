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
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// ── courtroom module errors ──

var (
	ErrCourtroomNotFound = errors.New("courtroom not found")
	ErrCourtroomExists   = errors.New("courtroom already exists")
)

// CourtroomService administrative courtroom catalog
type CourtroomService interface {
	List(ctx context.Context, includeInactive bool) ([]dto.CourtroomResponse, error)
	Create(ctx context.Context, req *dto.CreateCourtroomRequest, callerID string) (*dto.CourtroomResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourtroomRequest) (*dto.CourtroomResponse, error)
}

type courtroomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourtroomService creates a CourtroomService
func NewCourtroomService(repo *repository.Repository, logger *zap.Logger) CourtroomService {
	return &courtroomService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *courtroomService) List(ctx context.Context, includeInactive bool) ([]dto.CourtroomResponse, error) {
	rooms, err := s.repo.Courtroom.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("list courtrooms failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourtroomResponse, 0, len(rooms))
	for i := range rooms {
		result = append(result, toCourtroomResponse(&rooms[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *courtroomService) Create(ctx context.Context, req *dto.CreateCourtroomRequest, callerID string) (*dto.CourtroomResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}

	room := &model.Courtroom{Name: name, IsActive: true}
	if callerID != "" {
		room.CreatedBy = &callerID
	}
	if err := s.repo.Courtroom.Create(ctx, room); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrCourtroomExists
		}
		s.logger.Error("create courtroom failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("courtroom created", zap.String("name", room.Name))
	resp := toCourtroomResponse(room)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *courtroomService) Update(ctx context.Context, id string, req *dto.UpdateCourtroomRequest) (*dto.CourtroomResponse, error) {
	if !isUUID(id) {
		return nil, ErrCourtroomNotFound
	}
	room, err := s.repo.Courtroom.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourtroomNotFound
		}
		s.logger.Error("query courtroom failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidf("name must not be empty")
		}
		room.Name = name
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := s.repo.Courtroom.Update(ctx, room); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicateKey) {
			return nil, ErrCourtroomExists
		}
		s.logger.Error("update courtroom failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toCourtroomResponse(room)
	return &resp, nil
}

func toCourtroomResponse(r *model.Courtroom) dto.CourtroomResponse {
	return dto.CourtroomResponse{
		ID:        r.CourtroomID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: formatTime(r.CreatedAt),
	}
}
