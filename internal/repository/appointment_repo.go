package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// AppointmentFilter empty fields are ignored; From/To are inclusive YYYY-MM-DD bounds
type AppointmentFilter struct {
	LawyerID string
	ClientID string
	From     string
	To       string
}

// AppointmentRepository lawyer appointment data access
type AppointmentRepository interface {
	FindBySlot(ctx context.Context, lawyerID, date, time string) (*model.Appointment, error)
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (*model.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, error)
	ListByResourceAndDate(ctx context.Context, lawyerID, date string) ([]model.Appointment, error)
}

type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo creates an AppointmentRepository
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) FindBySlot(ctx context.Context, lawyerID, date, time string) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Where("lawyer_id = ? AND date = ? AND time = ?", lawyerID, date, time).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepo) Create(ctx context.Context, appt *model.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appt).Error; err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) (*model.Appointment, error) {
	var a model.Appointment
	res := r.db.WithContext(ctx).
		Model(&a).
		Clauses(clause.Returning{}).
		Where("appointment_id = ?", id).
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
	return &a, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("appointment_id = ?", id).
		Delete(&model.Appointment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *appointmentRepo) List(ctx context.Context, filter AppointmentFilter) ([]model.Appointment, error) {
	var appts []model.Appointment
	db := r.db.WithContext(ctx)

	if filter.LawyerID != "" {
		db = db.Where("lawyer_id = ?", filter.LawyerID)
	}
	if filter.ClientID != "" {
		db = db.Where("client_id = ?", filter.ClientID)
	}
	if filter.From != "" {
		db = db.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		db = db.Where("date <= ?", filter.To)
	}

	err := db.Order("created_at DESC").Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListByResourceAndDate(ctx context.Context, lawyerID, date string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("lawyer_id = ? AND date = ?", lawyerID, date).
		Find(&appts).Error
	return appts, err
}
