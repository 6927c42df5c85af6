package dto

// ── Roster requests ──

// WeekQueryRequest calendar-week query. Reference is any date in the wanted
// week ("YYYY-MM-DD"); empty means the current week.
type WeekQueryRequest struct {
	Reference string `form:"reference" binding:"omitempty,datetime=2006-01-02"`
}

// RangeQueryRequest arbitrary date-range query.
type RangeQueryRequest struct {
	From    string `form:"from"     binding:"required,datetime=2006-01-02"`
	To      string `form:"to"       binding:"required,datetime=2006-01-02"`
	StaffID string `form:"staff_id" binding:"omitempty"`
}

// ── Roster responses ──

// ShiftResponse one shift for calendar/admin display. Start and End are the
// UTC instants; DisplayStart/DisplayEnd are wall-clock strings in the org
// timezone, for render only.
type ShiftResponse struct {
	ID              string   `json:"id"`
	ExternalShiftID string   `json:"external_shift_id"`
	StaffID         string   `json:"staff_id"`
	StaffName       string   `json:"staff_name"`
	LocationName    string   `json:"location_name"`
	Address         string   `json:"address"`
	StartAt         string   `json:"start_at"`
	EndAt           string   `json:"end_at"`
	DisplayStart    string   `json:"display_start"`
	DisplayEnd      string   `json:"display_end"`
	Hours           float64  `json:"hours"`
	Mileage         *float64 `json:"mileage,omitempty"`
	Expense         *float64 `json:"expense,omitempty"`
	Absent          *bool    `json:"absent,omitempty"`
	Status          string   `json:"status"`
	CancelledReason *string  `json:"cancelled_reason,omitempty"`
	ClockInAt       *string  `json:"clock_in_at,omitempty"`
	ClockOutAt      *string  `json:"clock_out_at,omitempty"`
	ShiftType       string   `json:"shift_type"`
	URL             *string  `json:"url,omitempty"`
	Note            *string  `json:"note,omitempty"`
}

// WeekResponse one calendar week of shifts plus the week bounds used.
type WeekResponse struct {
	WeekStart string          `json:"week_start"`
	WeekEnd   string          `json:"week_end"`
	Shifts    []ShiftResponse `json:"shifts"`
}

// ImportResponse result of a roster CSV import.
type ImportResponse struct {
	Accepted      int    `json:"accepted"`
	Discarded     int    `json:"discarded"`
	Deduplicated  int    `json:"deduplicated"`
	EarliestStart string `json:"earliest_start,omitempty"` // week-selection hint for the calendar
}
