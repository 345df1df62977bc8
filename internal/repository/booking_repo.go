package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// BookingFilter empty fields are ignored; From/To are inclusive YYYY-MM-DD bounds
type BookingFilter struct {
	LawyerID  string
	ClientID  string
	Courtroom string
	From      string
	To        string
}

// BookingRepository courtroom booking data access
type BookingRepository interface {
	FindBySlot(ctx context.Context, courtroom, date, time string) (*model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (*model.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter BookingFilter) ([]model.Booking, error)
	ListByResourceAndDate(ctx context.Context, courtroom, date string) ([]model.Booking, error)
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
}

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo creates a BookingRepository
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

// FindBySlot returns gorm.ErrRecordNotFound when the slot is free
func (r *bookingRepo) FindBySlot(ctx context.Context, courtroom, date, time string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Where("courtroom = ? AND date = ? AND time = ?", courtroom, date, time).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create returns pkgerrors.ErrDuplicateKey when the slot is already taken
func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateStatus returns gorm.ErrRecordNotFound for an unknown id
func (r *bookingRepo) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (*model.Booking, error) {
	var b model.Booking
	res := r.db.WithContext(ctx).
		Model(&b).
		Clauses(clause.Returning{}).
		Where("booking_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&model.Booking{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *bookingRepo) List(ctx context.Context, filter BookingFilter) ([]model.Booking, error) {
	var bookings []model.Booking
	db := r.db.WithContext(ctx)

	if filter.LawyerID != "" {
		db = db.Where("lawyer_id = ?", filter.LawyerID)
	}
	if filter.ClientID != "" {
		db = db.Where("client_id = ?", filter.ClientID)
	}
	if filter.Courtroom != "" {
		db = db.Where("courtroom = ?", filter.Courtroom)
	}
	if filter.From != "" {
		db = db.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		db = db.Where("date <= ?", filter.To)
	}

	err := db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByResourceAndDate(ctx context.Context, courtroom, date string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("courtroom = ? AND date = ?", courtroom, date).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&bookings).Error
	return bookings, err
}
