package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// defaultUpcomingLimit is how many attention-list entries consumers show.
const defaultUpcomingLimit = 5

// upcomingHorizon is how far ahead the attention list looks.
const upcomingHorizon = 7 * 24 * time.Hour

// ComplianceService attendance-compliance reporting: the 4-week deficiency
// aggregate and the upcoming-shift attention list derived from it.
type ComplianceService interface {
	// Report returns the lookback-window compliance summaries, served from
	// the weekly cache when it is still valid.
	Report(ctx context.Context) (*dto.ComplianceReportResponse, error)
	// UpcomingShifts projects the next week's shifts for deficient staff.
	UpcomingShifts(ctx context.Context, req *dto.UpcomingQueryRequest) ([]dto.UpcomingShiftView, error)
}

// complianceCache is the slice of the Redis client the weekly cache gate
// needs. *redis.Client satisfies it; tests substitute an in-memory store.
type complianceCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type complianceService struct {
	repo   *repository.Repository
	cache  complianceCache
	loc    *time.Location
	clock  func() time.Time
	logger *zap.Logger
}

// NewComplianceService creates a ComplianceService. A nil rdb disables the
// weekly cache; every report recomputes.
func NewComplianceService(repo *repository.Repository, rdb *redis.Client, loc *time.Location, logger *zap.Logger) ComplianceService {
	svc := &complianceService{
		repo:   repo,
		loc:    loc,
		clock:  time.Now,
		logger: logger,
	}
	if rdb != nil {
		svc.cache = rdb
	}
	return svc
}

// ════════════════════════════════════════════════════════════
// Compliance analyzer
// ════════════════════════════════════════════════════════════

// AnalyzeCompliance runs the single-pass deficiency aggregation over a shift
// set. Staff with zero deficiencies are dropped; output is ordered by
// descending total deficiency, ties keeping first-seen order. The tie order
// is stable, not total: equal scores stay in input order.
//
// A shift joins IncompleteShifts once even when it fails several checks; the
// three counters are still incremented independently.
func AnalyzeCompliance(shifts []model.Shift, loc *time.Location) []dto.StaffComplianceSummary {
	byStaff := make(map[string]*dto.StaffComplianceSummary)
	var order []string

	for i := range shifts {
		shift := &shifts[i]
		summary, ok := byStaff[shift.StaffID]
		if !ok {
			summary = &dto.StaffComplianceSummary{
				StaffID:          shift.StaffID,
				StaffName:        shift.StaffName,
				IncompleteShifts: []dto.ShiftResponse{},
			}
			byStaff[shift.StaffID] = summary
			order = append(order, shift.StaffID)
		}

		summary.TotalShifts++

		incomplete := false
		if !shift.HasClockIn() {
			summary.MissingClockIn++
			incomplete = true
		}
		if !shift.HasClockOut() {
			summary.MissingClockOut++
			incomplete = true
		}
		if !shift.HasNote() {
			summary.MissingNotes++
			incomplete = true
		}
		if incomplete {
			summary.IncompleteShifts = append(summary.IncompleteShifts, toShiftResponse(shift, loc))
		}
	}

	out := make([]dto.StaffComplianceSummary, 0, len(order))
	for _, staffID := range order {
		summary := byStaff[staffID]
		if summary.TotalDeficiency() == 0 {
			continue
		}
		out = append(out, *summary)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalDeficiency() > out[j].TotalDeficiency()
	})

	return out
}

func (s *complianceService) Report(ctx context.Context) (*dto.ComplianceReportResponse, error) {
	now := s.clock().In(s.loc)
	windowStart, windowEnd := ComplianceLookback(now)

	resp := &dto.ComplianceReportResponse{
		WindowStart: windowStart.Format("2006-01-02"),
		WindowEnd:   windowEnd.Format("2006-01-02"),
	}

	if cached, ok := s.readCache(ctx, now); ok {
		resp.FromCache = true
		resp.Summaries = cached
		return resp, nil
	}

	shifts, err := s.repo.Shift.ListByRange(ctx, windowStart.UTC(), windowEnd.UTC())
	if err != nil {
		s.logger.Error("failed to load compliance window shifts", zap.Error(err))
		return nil, err
	}

	resp.Summaries = AnalyzeCompliance(shifts, s.loc)
	s.writeCache(ctx, now, resp.Summaries)
	return resp, nil
}

// ════════════════════════════════════════════════════════════
// Weekly cache gate
// ════════════════════════════════════════════════════════════

// complianceCacheEntry is the persisted cache shape. Valid only while
// WeekStart still matches the current Monday-start week; anything malformed
// is a miss, never an error.
type complianceCacheEntry struct {
	Data      []dto.StaffComplianceSummary `json:"data"`
	Timestamp int64                        `json:"timestamp"` // epoch millis
	WeekStart string                       `json:"weekStart"` // YYYY-MM-DD, a Monday
}

func (s *complianceService) readCache(ctx context.Context, now time.Time) ([]dto.StaffComplianceSummary, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, complianceCacheKey)
	if err != nil || !ok {
		return nil, false
	}

	var entry complianceCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		s.logger.Warn("corrupt compliance cache entry, treating as miss", zap.Error(err))
		_ = s.cache.Del(ctx, complianceCacheKey)
		return nil, false
	}
	if entry.Data == nil || entry.Timestamp <= 0 || entry.WeekStart == "" {
		s.logger.Warn("malformed compliance cache entry, treating as miss")
		_ = s.cache.Del(ctx, complianceCacheKey)
		return nil, false
	}

	weekStart, err := time.ParseInLocation("2006-01-02", entry.WeekStart, s.loc)
	if err != nil || !SameWeek(now, weekStart) {
		// Stale week: delete and recompute.
		_ = s.cache.Del(ctx, complianceCacheKey)
		return nil, false
	}

	return entry.Data, true
}

func (s *complianceService) writeCache(ctx context.Context, now time.Time, summaries []dto.StaffComplianceSummary) {
	if s.cache == nil {
		return
	}
	entry := complianceCacheEntry{
		Data:      summaries,
		Timestamp: now.UnixMilli(),
		WeekStart: WeekStartOf(now).Format("2006-01-02"),
	}
	if entry.Data == nil {
		entry.Data = []dto.StaffComplianceSummary{}
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return
	}
	// Self-expire after 8 days as a backstop; week-start matching is the
	// real validity check.
	if err := s.cache.Set(ctx, complianceCacheKey, string(b), 8*24*time.Hour); err != nil {
		s.logger.Warn("failed to write compliance cache", zap.Error(err))
	}
}

// ════════════════════════════════════════════════════════════
// Upcoming-shift projector
// ════════════════════════════════════════════════════════════

func (s *complianceService) UpcomingShifts(ctx context.Context, req *dto.UpcomingQueryRequest) ([]dto.UpcomingShiftView, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	if len(report.Summaries) == 0 {
		return []dto.UpcomingShiftView{}, nil
	}

	staffIDs := make([]string, 0, len(report.Summaries))
	for _, summary := range report.Summaries {
		staffIDs = append(staffIDs, summary.StaffID)
	}

	now := s.clock()
	shifts, err := s.repo.Shift.ListByStaffRange(ctx, staffIDs, now.UTC(), now.Add(upcomingHorizon).UTC())
	if err != nil {
		s.logger.Error("failed to load upcoming shifts", zap.Error(err))
		return nil, err
	}

	var allow map[string]bool
	if req.CareWorkOnly {
		allow = s.careTypeAllowList(ctx)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	views := make([]dto.UpcomingShiftView, 0, limit)
	for i := range shifts {
		shift := &shifts[i]
		if allow != nil && !allow[shift.ShiftType] {
			continue
		}
		views = append(views, dto.UpcomingShiftView{
			Shift:       toShiftResponse(shift, s.loc),
			HasClockIn:  shift.HasClockIn(),
			HasClockOut: shift.HasClockOut(),
			HasNotes:    shift.HasNote(),
			Status:      ShiftStatus(now, shift.StartAt, shift.EndAt),
		})
		if len(views) >= limit {
			break
		}
	}

	return views, nil
}

// careTypeAllowList loads the configured care-work shift types; a load
// failure degrades to no filtering rather than an error.
func (s *complianceService) careTypeAllowList(ctx context.Context) map[string]bool {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Warn("failed to load site settings for care-type filter", zap.Error(err))
		return nil
	}
	allow := make(map[string]bool, len(settings.CareShiftTypes))
	for _, t := range settings.CareShiftTypes {
		allow[t] = true
	}
	return allow
}
