package service

import (
	"strings"
	"testing"
	"time"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

func TestComposeShiftSMS(t *testing.T) {
	loc := mustLoadBrisbane(t)
	// 09:00 and 17:30 Brisbane time, stored as UTC.
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, loc).UTC()
	end := time.Date(2024, 3, 20, 17, 30, 0, 0, loc).UTC()

	shift := &model.Shift{
		StaffName: "Alex Nguyen",
		StartAt:   start,
		EndAt:     end,
	}

	got := ComposeShiftSMS(shift, loc)

	if !strings.HasPrefix(got, "Hi Alex Nguyen, a reminder about your shift today from 9:00 AM to 5:30 PM.") {
		t.Errorf("unexpected opening line:\n%s", got)
	}
	for _, line := range []string{
		"- Clock in at the start of your shift",
		"- Add a note about the visit",
		"- Clock out when you finish",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestComposeShiftSMS_TimesRenderInOrgZone(t *testing.T) {
	loc := mustLoadBrisbane(t)
	// 23:00 UTC is 9:00 AM next day in Brisbane (+10).
	shift := &model.Shift{
		StaffName: "Sam",
		StartAt:   time.Date(2024, 3, 19, 23, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2024, 3, 20, 3, 0, 0, 0, time.UTC),
	}

	got := ComposeShiftSMS(shift, loc)
	if !strings.Contains(got, "from 9:00 AM to 1:00 PM") {
		t.Errorf("expected Brisbane wall-clock times, got:\n%s", got)
	}
}

func TestComposeShiftSMS_InvalidTimes(t *testing.T) {
	loc := mustLoadBrisbane(t)

	cases := []*model.Shift{
		nil,
		{StaffName: "Sam", EndAt: time.Now()},
		{StaffName: "Sam", StartAt: time.Now()},
	}
	for _, shift := range cases {
		if got := ComposeShiftSMS(shift, loc); got != smsInvalidTimes {
			t.Errorf("expected the invalid-times message, got %q", got)
		}
	}
}
