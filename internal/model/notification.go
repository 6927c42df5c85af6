package model

import "time"

// Notification maps the notifications table. The persisted notification sink for
// shift reminders, upload reminders and contact alerts. Tag carries the
// de-duplication key (e.g. a shift ID for start reminders).
type Notification struct {
	NotificationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	UserID         *string   `gorm:"type:uuid;index:idx_notifications_user"         json:"user_id,omitempty"`
	Type           string    `gorm:"type:varchar(50);not null"                      json:"type"` // shift_reminder | upload_reminder | contact
	Tag            string    `gorm:"type:varchar(120);not null;default:''"          json:"tag"`
	Title          string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string    `gorm:"type:text;not null"                             json:"content"`
	IsRead         bool      `gorm:"not null;default:false"                         json:"is_read"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName table name override.
func (Notification) TableName() string { return "notifications" }
