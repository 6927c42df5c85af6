package model

import "time"

// Shift maps the shifts table. One scheduled work shift, created or overwritten in
// bulk by roster CSV import and mutated externally by field staff via
// clock-in/out and notes.
//
// ShiftID is the composed key external_shift_id + "_" + staff_id: the
// external system only keeps shift IDs unique per staff member, so the raw
// ID would collide across staff.
type Shift struct {
	ShiftID         string     `gorm:"type:varchar(120);primaryKey"              json:"shift_id"`
	ExternalShiftID string     `gorm:"type:varchar(60);not null"                 json:"external_shift_id"`
	StaffID         string     `gorm:"type:varchar(60);not null;index:idx_shifts_staff_start" json:"staff_id"`
	StaffName       string     `gorm:"type:varchar(100);not null;default:''"     json:"staff_name"`
	LocationName    string     `gorm:"type:varchar(200);not null;default:''"     json:"location_name"`
	Address         string     `gorm:"type:varchar(300);not null;default:''"     json:"address"`
	StartAt         time.Time  `gorm:"not null;index:idx_shifts_start_at;index:idx_shifts_staff_start" json:"start_at"`
	EndAt           time.Time  `gorm:"not null"                                  json:"end_at"`
	Hours           float64    `gorm:"type:numeric(6,2);not null;default:0"      json:"hours"`
	Mileage         *float64   `gorm:"type:numeric(8,2)"                         json:"mileage,omitempty"`
	Expense         *float64   `gorm:"type:numeric(10,2)"                        json:"expense,omitempty"`
	Absent          *bool      `json:"absent,omitempty"`
	Status          string     `gorm:"type:varchar(50);not null;default:''"      json:"status"`
	CancelledReason *string    `gorm:"type:varchar(300)"                         json:"cancelled_reason,omitempty"`
	ClockInAt       *time.Time `json:"clock_in_at,omitempty"`
	ClockOutAt      *time.Time `json:"clock_out_at,omitempty"`
	ShiftType       string     `gorm:"type:varchar(100);not null;default:''"     json:"shift_type"`
	URL             *string    `gorm:"type:varchar(500)"                         json:"url,omitempty"`
	Note            *string    `gorm:"type:text"                                 json:"note,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"        json:"updated_at"`
}

// TableName table name override.
func (Shift) TableName() string { return "shifts" }

// HasClockIn reports whether the shift has been clocked in.
func (s *Shift) HasClockIn() bool { return s.ClockInAt != nil }

// HasClockOut reports whether the shift has been clocked out.
func (s *Shift) HasClockOut() bool { return s.ClockOutAt != nil }

// HasNote reports whether a non-empty shift note was left.
func (s *Shift) HasNote() bool { return s.Note != nil && *s.Note != "" }
