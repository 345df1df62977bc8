package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
)

// ── user module errors ──

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserService user queries
type UserService interface {
	List(ctx context.Context, req *dto.UserListRequest) (*dto.PageResponse[dto.UserResponse], error)
	ListByRole(ctx context.Context, role model.Role) ([]dto.UserResponse, error)
	LookupContact(ctx context.Context, userID string) (*model.Contact, error)
	ContactsByRole(ctx context.Context, role model.Role) ([]model.Contact, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) (*dto.PageResponse[dto.UserResponse], error) {
	users, total, err := s.repo.User.List(ctx, model.Role(req.Role), req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserResponse(&users[i]))
	}
	return &dto.PageResponse[dto.UserResponse]{
		List:     list,
		Total:    total,
		Page:     req.GetPage(),
		PageSize: req.GetPageSize(),
	}, nil
}

func (s *userService) ListByRole(ctx context.Context, role model.Role) ([]dto.UserResponse, error) {
	users, err := s.repo.User.ListByRole(ctx, role)
	if err != nil {
		s.logger.Error("list users by role failed", zap.String("role", role.String()), zap.Error(err))
		return nil, err
	}

	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserResponse(&users[i]))
	}
	return list, nil
}

// ────────────────────── contacts ──────────────────────

func (s *userService) LookupContact(ctx context.Context, userID string) (*model.Contact, error) {
	if !isUUID(userID) {
		return nil, ErrUserNotFound
	}
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	c := user.Contact()
	return &c, nil
}

func (s *userService) ContactsByRole(ctx context.Context, role model.Role) ([]model.Contact, error) {
	users, err := s.repo.User.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	contacts := make([]model.Contact, 0, len(users))
	for i := range users {
		contacts = append(contacts, users[i].Contact())
	}
	return contacts, nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.UserID,
		Name:           u.Name,
		Username:       u.Username,
		Role:           u.Role.String(),
		Specialization: u.Specialization,
		Email:          u.Email,
		Phone:          u.Phone,
		CreatedAt:      formatTime(u.CreatedAt),
	}
}
