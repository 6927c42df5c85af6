package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// Roster CSV column names. The export tool on the other side emits exactly
// these headers; matching is exact, not fuzzy.
const (
	colShiftID          = "Shift ID"
	colLocationName     = "Name"
	colAddress          = "Address"
	colStaff            = "Staff"
	colStaffID          = "Staff ID"
	colStartDateTime    = "Start Date Time"
	colEndDateTime      = "End Date Time"
	colHours            = "Hours"
	colMileage          = "Mileage"
	colExpense          = "Expense"
	colAbsent           = "Absent"
	colShiftStatus      = "Shift Status"
	colCancelledReason  = "Cancelled Reason"
	colClockinDateTime  = "Clockin Date Time"
	colClockoutDateTime = "Clockout Date Time"
	colShiftType        = "Shift Type"
	colURL              = "URL"
	colNote             = "Note"
)

// Timestamp layouts accepted from the roster export, tried in order.
// Layouts without an offset are interpreted in the org timezone and stored
// as UTC.
var rosterTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
	"2006-01-02T15:04:05",
}

// RosterImportResult is the outcome of reconciling one uploaded CSV.
type RosterImportResult struct {
	Shifts        []model.Shift
	Discarded     int       // rows missing a shift ID or start time
	Deduplicated  int       // rows dropped by the recency merge
	EarliestStart time.Time // min start across accepted rows; zero when none
}

// ParseRosterCSV parses and reconciles an uploaded roster CSV.
//
// Reconciliation rules:
//   - rows without a Shift ID or Start Date Time are discarded up front;
//   - the uniqueness key is shiftID + "_" + staffID, because the external
//     system only keeps shift IDs unique per staff member;
//   - when several rows share a key, the one whose own start time is latest
//     wins, regardless of row order in the file.
//
// Any malformed CSV structure surfaces as a single error; per-field parse
// problems degrade to null values rather than rejecting the row.
func ParseRosterCSV(r io.Reader, loc *time.Location) (*RosterImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %v", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	if _, ok := idx[colShiftID]; !ok {
		return nil, fmt.Errorf("failed to parse CSV: missing required column %q", colShiftID)
	}
	if _, ok := idx[colStartDateTime]; !ok {
		return nil, fmt.Errorf("failed to parse CSV: missing required column %q", colStartDateTime)
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	result := &RosterImportResult{}
	byKey := make(map[string]model.Shift)
	var order []string // first-seen key order, keeps output deterministic

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %v", err)
		}

		externalID := field(row, colShiftID)
		startRaw := field(row, colStartDateTime)
		if externalID == "" || startRaw == "" {
			result.Discarded++
			continue
		}

		startAt, ok := parseRosterTime(startRaw, loc)
		if !ok {
			result.Discarded++
			continue
		}

		staffID := field(row, colStaffID)
		shift := model.Shift{
			ShiftID:         externalID + "_" + staffID,
			ExternalShiftID: externalID,
			StaffID:         staffID,
			StaffName:       field(row, colStaff),
			LocationName:    field(row, colLocationName),
			Address:         field(row, colAddress),
			StartAt:         startAt,
			EndAt:           startAt,
			Hours:           parseFloatOrZero(field(row, colHours)),
			Mileage:         parseFloatPtr(field(row, colMileage)),
			Expense:         parseFloatPtr(field(row, colExpense)),
			Absent:          parseBoolPtr(field(row, colAbsent)),
			Status:          field(row, colShiftStatus),
			CancelledReason: stringPtr(field(row, colCancelledReason)),
			ClockInAt:       parseTimePtr(field(row, colClockinDateTime), loc),
			ClockOutAt:      parseTimePtr(field(row, colClockoutDateTime), loc),
			ShiftType:       field(row, colShiftType),
			URL:             stringPtr(field(row, colURL)),
			Note:            stringPtr(field(row, colNote)),
		}
		if endAt, ok := parseRosterTime(field(row, colEndDateTime), loc); ok {
			shift.EndAt = endAt
		}

		existing, seen := byKey[shift.ShiftID]
		if !seen {
			byKey[shift.ShiftID] = shift
			order = append(order, shift.ShiftID)
			continue
		}
		// Last write wins by recency of the shift's own start time, not by
		// row order in the file.
		result.Deduplicated++
		if shift.StartAt.After(existing.StartAt) {
			byKey[shift.ShiftID] = shift
		}
	}

	result.Shifts = make([]model.Shift, 0, len(order))
	for _, key := range order {
		shift := byKey[key]
		result.Shifts = append(result.Shifts, shift)
		if result.EarliestStart.IsZero() || shift.StartAt.Before(result.EarliestStart) {
			result.EarliestStart = shift.StartAt
		}
	}

	return result, nil
}

// parseRosterTime parses one timestamp field; offset-free layouts are
// interpreted in loc. The returned instant is UTC.
func parseRosterTime(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range rosterTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseTimePtr(s string, loc *time.Location) *time.Time {
	t, ok := parseRosterTime(s, loc)
	if !ok {
		return nil
	}
	return &t
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	b := strings.EqualFold(s, "true")
	return &b
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
