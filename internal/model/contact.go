package model

import "time"

// ContactSubmission maps the contact_submissions table. One public contact-form entry.
type ContactSubmission struct {
	SubmissionID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`
	Name         string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string    `gorm:"type:varchar(255);not null"                     json:"email"`
	Phone        string    `gorm:"type:varchar(30);not null;default:''"           json:"phone"`
	Subject      string    `gorm:"type:varchar(200);not null;default:''"          json:"subject"`
	Message      string    `gorm:"type:text;not null"                             json:"message"`
	Handled      bool      `gorm:"not null;default:false"                         json:"handled"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName table name override.
func (ContactSubmission) TableName() string { return "contact_submissions" }
