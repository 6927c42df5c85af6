package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// ShiftRepository shift data access.
// Range queries are closed intervals on start_at, ascending, matching the
// calendar and compliance window semantics.
type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]model.Shift, error)
	ListByStaffRange(ctx context.Context, staffIDs []string, start, end time.Time) ([]model.Shift, error)
	ListUpcomingForStaff(ctx context.Context, staffID string, from time.Time, limit int) ([]model.Shift, error)
	// UpsertBatch inserts or overwrites shifts keyed by shift_id in one
	// transaction; any failure rolls back the whole batch.
	UpsertBatch(ctx context.Context, shifts []model.Shift) error
}

// shiftRepo GORM implementation of ShiftRepository.
type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo creates a ShiftRepository.
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) ListByRange(ctx context.Context, start, end time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("start_at >= ? AND start_at <= ?", start, end).
		Order("start_at ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepo) ListByStaffRange(ctx context.Context, staffIDs []string, start, end time.Time) ([]model.Shift, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("staff_id IN ?", staffIDs).
		Where("start_at >= ? AND start_at <= ?", start, end).
		Order("start_at ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepo) ListUpcomingForStaff(ctx context.Context, staffID string, from time.Time, limit int) ([]model.Shift, error) {
	var shifts []model.Shift
	q := r.db.WithContext(ctx).
		Where("staff_id = ? AND start_at >= ?", staffID, from).
		Order("start_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepo) UpsertBatch(ctx context.Context, shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shift_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"external_shift_id", "staff_id", "staff_name",
				"location_name", "address", "start_at", "end_at",
				"hours", "mileage", "expense", "absent", "status",
				"cancelled_reason", "clock_in_at", "clock_out_at",
				"shift_type", "url", "note", "updated_at",
			}),
		}).Create(&shifts).Error
	})
}
