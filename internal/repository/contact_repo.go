package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// ContactRepository contact-submission data access.
type ContactRepository interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	MarkHandled(ctx context.Context, id string) error
	List(ctx context.Context, handled *bool, offset, limit int) ([]model.ContactSubmission, int64, error)
}

// contactRepo GORM implementation of ContactRepository.
type contactRepo struct {
	db *gorm.DB
}

// NewContactRepo creates a ContactRepository.
func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, submission *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	var submission model.ContactSubmission
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", id).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *contactRepo) MarkHandled(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("submission_id = ?", id).
		Update("handled", true).Error
}

func (r *contactRepo) List(ctx context.Context, handled *bool, offset, limit int) ([]model.ContactSubmission, int64, error) {
	var submissions []model.ContactSubmission
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ContactSubmission{})
	if handled != nil {
		db = db.Where("handled = ?", *handled)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}
