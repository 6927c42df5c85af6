package service

import (
	"testing"
	"time"
)

func mustLoadBrisbane(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Brisbane")
	if err != nil {
		t.Fatalf("failed to load test timezone: %v", err)
	}
	return loc
}

func TestWeekStartOf_MidWeek(t *testing.T) {
	loc := mustLoadBrisbane(t)
	// Wednesday 2024-03-20
	ref := time.Date(2024, 3, 20, 14, 30, 0, 0, loc)

	got := WeekStartOf(ref)
	want := time.Date(2024, 3, 18, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("expected week start %v, got %v", want, got)
	}
}

func TestWeekStartOf_SundayBelongsToPrecedingMonday(t *testing.T) {
	loc := mustLoadBrisbane(t)
	// Sunday 2024-03-24
	ref := time.Date(2024, 3, 24, 23, 0, 0, 0, loc)

	got := WeekStartOf(ref)
	want := time.Date(2024, 3, 18, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Sunday must map to the preceding Monday %v, got %v", want, got)
	}
}

func TestWeekStartOf_MondayIsItsOwnWeekStart(t *testing.T) {
	loc := mustLoadBrisbane(t)
	ref := time.Date(2024, 3, 18, 0, 0, 0, 0, loc)

	got := WeekStartOf(ref)
	if !got.Equal(ref) {
		t.Errorf("Monday midnight must be its own week start, got %v", got)
	}
}

func TestCurrentWeekBounds(t *testing.T) {
	loc := mustLoadBrisbane(t)
	ref := time.Date(2024, 3, 20, 9, 0, 0, 0, loc)

	start, end := CurrentWeekBounds(ref)

	wantStart := time.Date(2024, 3, 18, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2024, 3, 24, 23, 59, 59, 999000000, loc)
	if !start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
	if !end.Before(start.AddDate(0, 0, 7)) {
		t.Error("week end must fall before the next week's Monday")
	}
}

func TestComplianceLookback_EndsBeforeCurrentWeek(t *testing.T) {
	loc := mustLoadBrisbane(t)
	ref := time.Date(2024, 3, 20, 9, 0, 0, 0, loc)

	start, end := ComplianceLookback(ref)

	// Window ends the instant before Monday 2024-03-18 00:00.
	wantEnd := time.Date(2024, 3, 17, 23, 59, 59, 999000000, loc)
	if !end.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}

	// 28 whole days: 2024-02-19 through 2024-03-17 inclusive.
	wantStart := time.Date(2024, 2, 19, 0, 0, 0, 0, loc)
	if !start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}

	weekStart := WeekStartOf(ref)
	if !end.Before(weekStart) {
		t.Error("lookback window must not overlap the current week")
	}
}

func TestComplianceLookback_SpansExactly28Days(t *testing.T) {
	loc := mustLoadBrisbane(t)
	ref := time.Date(2024, 7, 5, 12, 0, 0, 0, loc)

	start, end := ComplianceLookback(ref)

	days := int(end.Sub(start).Hours()/24) + 1
	if days != 28 {
		t.Errorf("expected a 28-day window, got %d days (%v .. %v)", days, start, end)
	}
}

func TestSameWeek(t *testing.T) {
	loc := mustLoadBrisbane(t)

	monday := time.Date(2024, 3, 18, 0, 0, 0, 0, loc)
	sunday := time.Date(2024, 3, 24, 23, 59, 0, 0, loc)
	nextMonday := time.Date(2024, 3, 25, 0, 0, 0, 0, loc)

	if !SameWeek(monday, sunday) {
		t.Error("Monday and the following Sunday are the same week")
	}
	if SameWeek(sunday, nextMonday) {
		t.Error("Sunday and the next Monday are different weeks")
	}
}

func TestSameWeek_CrossZoneComparison(t *testing.T) {
	loc := mustLoadBrisbane(t)

	// Sunday 22:00 Brisbane is Monday 12:00 UTC of the same instant plus
	// offset; the comparison must happen in the first argument's zone.
	local := time.Date(2024, 3, 24, 22, 0, 0, 0, loc)
	utc := local.UTC()

	if !SameWeek(local, utc) {
		t.Error("the same instant must compare as the same week regardless of zone")
	}
}

func TestShiftStatus(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, loc)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"before start", now.Add(time.Hour), now.Add(2 * time.Hour), ShiftStatusUpcoming},
		{"at start", now, now.Add(time.Hour), ShiftStatusInProgress},
		{"mid shift", now.Add(-time.Hour), now.Add(time.Hour), ShiftStatusInProgress},
		{"at end", now.Add(-time.Hour), now, ShiftStatusInProgress},
		{"after end", now.Add(-2 * time.Hour), now.Add(-time.Hour), ShiftStatusCompleted},
		{"zero start", time.Time{}, now.Add(time.Hour), ShiftStatusCompleted},
		{"zero end", now.Add(-time.Hour), time.Time{}, ShiftStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShiftStatus(now, tt.start, tt.end); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
