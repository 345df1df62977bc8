package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// CaseRepository legal case data access
type CaseRepository interface {
	Create(ctx context.Context, c *model.LegalCase) error
	GetByID(ctx context.Context, id string) (*model.LegalCase, error)
	// List an empty lawyerID lists every case
	List(ctx context.Context, lawyerID string, offset, limit int) ([]model.LegalCase, int64, error)
}

type caseRepo struct {
	db *gorm.DB
}

// NewCaseRepo creates a CaseRepository
func NewCaseRepo(db *gorm.DB) CaseRepository {
	return &caseRepo{db: db}
}

func (r *caseRepo) Create(ctx context.Context, c *model.LegalCase) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return pkgerrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *caseRepo) GetByID(ctx context.Context, id string) (*model.LegalCase, error) {
	var c model.LegalCase
	err := r.db.WithContext(ctx).
		Where("case_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) List(ctx context.Context, lawyerID string, offset, limit int) ([]model.LegalCase, int64, error) {
	var cases []model.LegalCase
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LegalCase{})
	if lawyerID != "" {
		db = db.Where("lawyer_id = ?", lawyerID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&cases).Error; err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}
