package dto

// ── Compliance responses ──

// StaffComplianceSummary per-staff deficiency aggregate over the 4-week
// lookback window. Ordering is descending total deficiency; ties keep
// first-seen order.
type StaffComplianceSummary struct {
	StaffID          string          `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	TotalShifts      int             `json:"total_shifts"`
	MissingClockIn   int             `json:"missing_clock_in"`
	MissingClockOut  int             `json:"missing_clock_out"`
	MissingNotes     int             `json:"missing_notes"`
	IncompleteShifts []ShiftResponse `json:"incomplete_shifts"`
}

// TotalDeficiency sum of the three deficiency counters.
func (s *StaffComplianceSummary) TotalDeficiency() int {
	return s.MissingClockIn + s.MissingClockOut + s.MissingNotes
}

// ComplianceReportResponse compliance dashboard payload.
type ComplianceReportResponse struct {
	WindowStart string                   `json:"window_start"`
	WindowEnd   string                   `json:"window_end"`
	FromCache   bool                     `json:"from_cache"`
	Summaries   []StaffComplianceSummary `json:"summaries"`
}

// UpcomingShiftView projection of a shift for the attention list.
type UpcomingShiftView struct {
	Shift       ShiftResponse `json:"shift"`
	HasClockIn  bool          `json:"has_clock_in"`
	HasClockOut bool          `json:"has_clock_out"`
	HasNotes    bool          `json:"has_notes"`
	Status      string        `json:"status"` // upcoming | in-progress | completed
}

// UpcomingQueryRequest attention-list query.
type UpcomingQueryRequest struct {
	CareWorkOnly bool `form:"care_work_only"`
	Limit        int  `form:"limit" binding:"omitempty,min=1,max=50"`
}

// SMSPreviewResponse rendered reminder text for one shift.
type SMSPreviewResponse struct {
	ShiftID string `json:"shift_id"`
	Message string `json:"message"`
}
