package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// NotificationRepository notification data access.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	List(ctx context.Context, userID *string, offset, limit int) ([]model.Notification, int64, error)
	MarkRead(ctx context.Context, id string) error
}

// notificationRepo GORM implementation of NotificationRepository.
type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo creates a NotificationRepository.
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepo) List(ctx context.Context, userID *string, offset, limit int) ([]model.Notification, int64, error) {
	var notifications []model.Notification
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Notification{})
	if userID != nil {
		db = db.Where("user_id = ?", *userID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("notification_id = ?", id).
		Update("is_read", true).Error
}
