package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

// mockNotifier records notifications instead of persisting them.
type mockNotifier struct {
	sent []model.Notification
}

func (m *mockNotifier) Notify(_ context.Context, n *model.Notification) error {
	m.sent = append(m.sent, *n)
	return nil
}

func (m *mockNotifier) sentWithType(typ string) []model.Notification {
	var out []model.Notification
	for _, n := range m.sent {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func newTestScheduler(t *testing.T, now time.Time) (*ReminderScheduler, *mockShiftRepo, *mockNotifier) {
	t.Helper()
	repo, shiftRepo, _ := newTestRepository()
	notifier := &mockNotifier{}
	cfg := &config.ReminderConfig{
		Enabled:        true,
		MorningUpload:  "06:00",
		EveningUpload:  "17:30",
		LeadMinutes:    30,
		BandHalfWidth:  1,
		TickerInterval: time.Minute,
	}
	sched := NewReminderScheduler(cfg, repo, nil, notifier, mustLoadBrisbane(t), zap.NewNop())
	sched.clock = func() time.Time { return now }
	return sched, shiftRepo, notifier
}

// deficientLookbackShift returns a past shift with a missing note so its
// staff member lands on the attention list the scheduler reminds for.
func deficientLookbackShift(staffID, staffName string) model.Shift {
	shift := makeShift("P1", staffID, staffName, time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC))
	shift.Note = nil
	return shift
}

func TestShiftReminder_FiresInsideBand(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, loc)
	sched, shiftRepo, notifier := newTestScheduler(t, now)

	// Starts exactly 30 minutes out; ST01 is deficient in the lookback.
	shift := makeShift("S1", "ST01", "Alex", now.UTC().Add(30*time.Minute))
	shift.ShiftType = "Community Care"
	_ = shiftRepo.UpsertBatch(context.Background(), []model.Shift{deficientLookbackShift("ST01", "Alex"), shift})

	sched.tick(context.Background())

	reminders := notifier.sentWithType("shift_reminder")
	if len(reminders) != 1 {
		t.Fatalf("expected exactly one shift reminder, got %d", len(reminders))
	}
	if reminders[0].Tag != shiftReminderKey+"S1_ST01" {
		t.Errorf("unexpected tag %s", reminders[0].Tag)
	}
}

func TestShiftReminder_BandEdges(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, loc)

	tests := []struct {
		name       string
		minutesOut time.Duration
		want       int
	}{
		{"29 minutes fires", 29 * time.Minute, 1},
		{"31 minutes fires", 31 * time.Minute, 1},
		{"28 minutes silent", 28 * time.Minute, 0},
		{"32 minutes silent", 32 * time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, shiftRepo, notifier := newTestScheduler(t, now)
			shift := makeShift("S1", "ST01", "Alex", now.UTC().Add(tt.minutesOut))
			_ = shiftRepo.UpsertBatch(context.Background(), []model.Shift{deficientLookbackShift("ST01", "Alex"), shift})

			sched.tick(context.Background())

			if got := len(notifier.sentWithType("shift_reminder")); got != tt.want {
				t.Errorf("expected %d reminders, got %d", tt.want, got)
			}
		})
	}
}

func TestShiftReminder_SkipsCompliantStaff(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, loc)
	sched, shiftRepo, notifier := newTestScheduler(t, now)

	// ST02 has a clean lookback record, so their shift is not projected.
	shift := makeShift("S1", "ST02", "Blake", now.UTC().Add(30*time.Minute))
	_ = shiftRepo.UpsertBatch(context.Background(), []model.Shift{shift})

	sched.tick(context.Background())

	if got := len(notifier.sentWithType("shift_reminder")); got != 0 {
		t.Errorf("expected no reminder for compliant staff, got %d", got)
	}
}

func TestShiftReminder_KeepsProjectionOnRefreshFailure(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, loc)
	sched, shiftRepo, notifier := newTestScheduler(t, now)

	shift := makeShift("S1", "ST01", "Alex", now.UTC().Add(30*time.Minute))
	_ = shiftRepo.UpsertBatch(context.Background(), []model.Shift{deficientLookbackShift("ST01", "Alex"), shift})

	// First tick loads the projection.
	sched.tick(context.Background())
	if len(notifier.sentWithType("shift_reminder")) != 1 {
		t.Fatal("expected the first tick to fire")
	}

	// Query failure on a later refresh keeps the loaded shifts.
	shiftRepo.listErr = errSettingsDown
	sched.lastRefresh = time.Time{} // force a refresh attempt
	sched.tick(context.Background())

	if len(sched.upcoming) != 1 {
		t.Error("a failed refresh must keep the previous projection")
	}
}

func TestPruneExpired(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, loc)
	sched, _, _ := newTestScheduler(t, now)

	past := makeShift("S1", "ST01", "Alex", now.UTC().Add(-10*time.Hour))
	future := makeShift("S2", "ST01", "Alex", now.UTC().Add(2*time.Hour))
	sched.upcoming = []model.Shift{past, future}

	sched.pruneExpired(now)

	if len(sched.upcoming) != 1 || sched.upcoming[0].ShiftID != "S2_ST01" {
		t.Errorf("expected only the future shift to survive, got %v", sched.upcoming)
	}
}

func TestUploadReminder_FiresOnSlotMinute(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 6, 0, 0, 0, loc)
	sched, _, notifier := newTestScheduler(t, now)

	sched.tick(context.Background())

	uploads := notifier.sentWithType("upload_reminder")
	if len(uploads) != 1 {
		t.Fatalf("expected one upload reminder at 06:00, got %d", len(uploads))
	}
	if uploads[0].Tag != "upload:06:00:2024-03-20" {
		t.Errorf("unexpected tag %s", uploads[0].Tag)
	}
}

func TestUploadReminder_SilentOffSlot(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 6, 1, 0, 0, loc)
	sched, _, notifier := newTestScheduler(t, now)

	sched.tick(context.Background())

	if got := len(notifier.sentWithType("upload_reminder")); got != 0 {
		t.Errorf("expected no upload reminder at 06:01, got %d", got)
	}
}

func TestUploadReminder_EveningSlot(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 17, 30, 0, 0, loc)
	sched, _, notifier := newTestScheduler(t, now)

	sched.tick(context.Background())

	uploads := notifier.sentWithType("upload_reminder")
	if len(uploads) != 1 {
		t.Fatalf("expected one upload reminder at 17:30, got %d", len(uploads))
	}
}
