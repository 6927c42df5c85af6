package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// upcomingRefreshInterval is how often the scheduler re-projects the
// attention list from the database; the 60-second tick works off the
// in-memory copy in between.
const upcomingRefreshInterval = 10 * time.Minute

// ReminderScheduler runs the recurring reminder checks: shift-start
// reminders for deficient staff's upcoming shifts and the twice-daily
// roster-upload reminders.
//
// One goroutine owns all state; Run exits when ctx is cancelled.
type ReminderScheduler struct {
	cfg      *config.ReminderConfig
	repo     *repository.Repository
	rdb      *redis.Client
	notifier Notifier
	loc      *time.Location
	clock    func() time.Time
	logger   *zap.Logger

	upcoming    []model.Shift
	lastRefresh time.Time
}

// NewReminderScheduler creates the scheduler.
func NewReminderScheduler(
	cfg *config.ReminderConfig,
	repo *repository.Repository,
	rdb *redis.Client,
	notifier Notifier,
	loc *time.Location,
	logger *zap.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		cfg:      cfg,
		repo:     repo,
		rdb:      rdb,
		notifier: notifier,
		loc:      loc,
		clock:    time.Now,
		logger:   logger,
	}
}

// Run drives the 60-second tick until ctx is cancelled.
func (s *ReminderScheduler) Run(ctx context.Context) {
	interval := s.cfg.TickerInterval
	if interval <= 0 {
		interval = time.Minute
	}

	s.logger.Info("reminder scheduler started",
		zap.Duration("interval", interval),
		zap.String("morning_upload", s.cfg.MorningUpload),
		zap.String("evening_upload", s.cfg.EveningUpload),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs both checks once. Split out so tests can drive it directly.
func (s *ReminderScheduler) tick(ctx context.Context) {
	now := s.clock()
	s.refreshUpcoming(ctx, now)
	s.pruneExpired(now)
	s.checkShiftReminders(ctx, now)
	s.checkUploadReminders(ctx, now)
}

// refreshUpcoming re-projects the deficient-staff attention list: staff
// with lookback deficiencies, their shifts over the next week.
func (s *ReminderScheduler) refreshUpcoming(ctx context.Context, now time.Time) {
	if !s.lastRefresh.IsZero() && now.Sub(s.lastRefresh) < upcomingRefreshInterval {
		return
	}
	s.lastRefresh = now

	lookStart, lookEnd := ComplianceLookback(now.In(s.loc))
	window, err := s.repo.Shift.ListByRange(ctx, lookStart.UTC(), lookEnd.UTC())
	if err != nil {
		// Keep the previous projection; a transient query failure should
		// not silence reminders that are already loaded.
		s.logger.Warn("failed to refresh upcoming shifts", zap.Error(err))
		return
	}

	summaries := AnalyzeCompliance(window, s.loc)
	if len(summaries) == 0 {
		s.upcoming = nil
		return
	}
	staffIDs := make([]string, 0, len(summaries))
	for i := range summaries {
		staffIDs = append(staffIDs, summaries[i].StaffID)
	}

	shifts, err := s.repo.Shift.ListByStaffRange(ctx, staffIDs, now.UTC(), now.Add(upcomingHorizon).UTC())
	if err != nil {
		s.logger.Warn("failed to refresh upcoming shifts", zap.Error(err))
		return
	}
	s.upcoming = shifts
}

// pruneExpired drops shifts whose end time has passed.
func (s *ReminderScheduler) pruneExpired(now time.Time) {
	kept := s.upcoming[:0]
	for i := range s.upcoming {
		if s.upcoming[i].EndAt.After(now) {
			kept = append(kept, s.upcoming[i])
		}
	}
	s.upcoming = kept
}

// checkShiftReminders fires one notification per shift whose start falls in
// the closed [lead-band, lead+band] minute window. The 3-minute tolerance
// absorbs ticker drift; the sink's tag de-dup keeps the overlap from
// double-firing.
func (s *ReminderScheduler) checkShiftReminders(ctx context.Context, now time.Time) {
	lead := float64(s.cfg.LeadMinutes)
	band := float64(s.cfg.BandHalfWidth)

	for i := range s.upcoming {
		shift := &s.upcoming[i]
		minutes := shift.StartAt.Sub(now).Minutes()
		if minutes < lead-band || minutes > lead+band {
			continue
		}

		notification := &model.Notification{
			Type:  "shift_reminder",
			Tag:   shiftReminderKey + shift.ShiftID,
			Title: fmt.Sprintf("Shift starting soon: %s", shift.StaffName),
			Content: fmt.Sprintf("%s starts a %s shift at %s in about %d minutes.",
				shift.StaffName,
				shift.ShiftType,
				shift.StartAt.In(s.loc).Format("3:04 PM"),
				s.cfg.LeadMinutes,
			),
		}
		if err := s.notifier.Notify(ctx, notification); err != nil {
			s.logger.Warn("failed to send shift reminder",
				zap.String("shift_id", shift.ShiftID),
				zap.Error(err),
			)
		}
	}
}

// checkUploadReminders fires the morning/evening roster-upload nudges.
// Each slot fires at most once per local day, tracked by a persisted
// fired-today marker so a paused and resumed process cannot double-fire on
// the minute boundary.
func (s *ReminderScheduler) checkUploadReminders(ctx context.Context, now time.Time) {
	if !s.shouldShowUploadReminder(ctx, now) {
		return
	}

	local := now.In(s.loc)
	clock := local.Format("15:04")

	for _, slot := range []string{s.cfg.MorningUpload, s.cfg.EveningUpload} {
		if slot == "" || clock != slot {
			continue
		}
		if !s.claimUploadSlot(ctx, slot, local) {
			continue
		}

		notification := &model.Notification{
			Type:  "upload_reminder",
			Tag:   "upload:" + slot + ":" + local.Format("2006-01-02"),
			Title: "Roster upload reminder",
			Content: "No shift roster has been uploaded today. " +
				"Please upload the latest roster CSV so compliance tracking stays current.",
		}
		if err := s.notifier.Notify(ctx, notification); err != nil {
			s.logger.Warn("failed to send upload reminder", zap.Error(err))
		}
	}
}

// shouldShowUploadReminder reports whether no roster was uploaded today.
func (s *ReminderScheduler) shouldShowUploadReminder(ctx context.Context, now time.Time) bool {
	marker := readLastUploadMarker(ctx, s.rdb, s.logger)
	if marker == nil {
		return true
	}
	return marker.Date != now.In(s.loc).Format("2006-01-02")
}

// claimUploadSlot records that this slot fired today; reports whether the
// claim was won. Without Redis the minute-exact match is the only guard.
func (s *ReminderScheduler) claimUploadSlot(ctx context.Context, slot string, local time.Time) bool {
	if s.rdb == nil {
		return true
	}
	key := reminderFiredKey + slot + ":" + local.Format("2006-01-02")
	fresh, err := s.rdb.SetNX(ctx, key, "1", 48*time.Hour)
	if err != nil {
		s.logger.Warn("failed to claim upload reminder slot", zap.Error(err))
		return true
	}
	return fresh
}
