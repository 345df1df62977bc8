package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// CourtroomRepository courtroom data access
type CourtroomRepository interface {
	Create(ctx context.Context, room *model.Courtroom) error
	GetByID(ctx context.Context, id string) (*model.Courtroom, error)
	GetByName(ctx context.Context, name string) (*model.Courtroom, error)
	List(ctx context.Context, includeInactive bool) ([]model.Courtroom, error)
	Update(ctx context.Context, room *model.Courtroom) error
}

type courtroomRepo struct {
	db *gorm.DB
}

// NewCourtroomRepo creates a CourtroomRepository
func NewCourtroomRepo(db *gorm.DB) CourtroomRepository {
	return &courtroomRepo{db: db}
}

func (r *courtroomRepo) Create(ctx context.Context, room *model.Courtroom) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *courtroomRepo) GetByID(ctx context.Context, id string) (*model.Courtroom, error) {
	var room model.Courtroom
	err := r.db.WithContext(ctx).
		Where("courtroom_id = ?", id).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *courtroomRepo) GetByName(ctx context.Context, name string) (*model.Courtroom, error) {
	var room model.Courtroom
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *courtroomRepo) List(ctx context.Context, includeInactive bool) ([]model.Courtroom, error) {
	var rooms []model.Courtroom
	db := r.db.WithContext(ctx)
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}
	err := db.Order("name ASC").Find(&rooms).Error
	return rooms, err
}

// Update renaming cascades to bookings through the foreign key
func (r *courtroomRepo) Update(ctx context.Context, room *model.Courtroom) error {
	if err := r.db.WithContext(ctx).Save(room).Error; err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}
