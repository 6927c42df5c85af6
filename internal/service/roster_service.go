package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// ── Roster module errors ──

var (
	ErrShiftNotFound  = errors.New("shift not found")
	ErrEmptyImport    = errors.New("the uploaded file contains no importable shifts")
	ErrImportRejected = errors.New("failed to import events")
)

// RosterService shift roster operations: calendar queries, CSV import and
// the staff calendar feed.
type RosterService interface {
	// GetWeek returns the calendar week containing reference.
	GetWeek(ctx context.Context, reference time.Time) (*dto.WeekResponse, error)
	// GetRange returns shifts in a closed date range, optionally one staff member's.
	GetRange(ctx context.Context, from, to time.Time, staffID string) ([]dto.ShiftResponse, error)
	// ImportCSV reconciles and upserts an uploaded roster CSV as one batch.
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResponse, error)
	// StaffCalendarICS renders a staff member's upcoming shifts as an iCalendar feed.
	StaffCalendarICS(ctx context.Context, staffID string) (string, error)
	// PreviewSMS renders the reminder SMS text for one shift.
	PreviewSMS(ctx context.Context, shiftID string) (*dto.SMSPreviewResponse, error)
}

type rosterService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	loc    *time.Location
	clock  func() time.Time
	logger *zap.Logger
}

// NewRosterService creates a RosterService. loc is the org display timezone;
// storage stays UTC.
func NewRosterService(repo *repository.Repository, rdb *redis.Client, loc *time.Location, logger *zap.Logger) RosterService {
	return &rosterService{
		repo:   repo,
		rdb:    rdb,
		loc:    loc,
		clock:  time.Now,
		logger: logger,
	}
}

func (s *rosterService) GetWeek(ctx context.Context, reference time.Time) (*dto.WeekResponse, error) {
	if reference.IsZero() {
		reference = s.clock()
	}
	start, end := CurrentWeekBounds(reference.In(s.loc))

	shifts, err := s.repo.Shift.ListByRange(ctx, start.UTC(), end.UTC())
	if err != nil {
		s.logger.Error("failed to load week shifts", zap.Error(err))
		return nil, err
	}

	resp := &dto.WeekResponse{
		WeekStart: start.Format("2006-01-02"),
		WeekEnd:   end.Format("2006-01-02"),
		Shifts:    make([]dto.ShiftResponse, 0, len(shifts)),
	}
	for i := range shifts {
		resp.Shifts = append(resp.Shifts, toShiftResponse(&shifts[i], s.loc))
	}
	return resp, nil
}

func (s *rosterService) GetRange(ctx context.Context, from, to time.Time, staffID string) ([]dto.ShiftResponse, error) {
	var (
		shifts []model.Shift
		err    error
	)
	if staffID != "" {
		shifts, err = s.repo.Shift.ListByStaffRange(ctx, []string{staffID}, from.UTC(), to.UTC())
	} else {
		shifts, err = s.repo.Shift.ListByRange(ctx, from.UTC(), to.UTC())
	}
	if err != nil {
		s.logger.Error("failed to load shifts for range", zap.Error(err))
		return nil, err
	}

	out := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, toShiftResponse(&shifts[i], s.loc))
	}
	return out, nil
}

func (s *rosterService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResponse, error) {
	result, err := ParseRosterCSV(r, s.loc)
	if err != nil {
		// Surface the parse failure as a single message, nothing committed.
		return nil, err
	}
	if len(result.Shifts) == 0 {
		return nil, ErrEmptyImport
	}

	if err := s.repo.Shift.UpsertBatch(ctx, result.Shifts); err != nil {
		s.logger.Error("roster import upsert failed, batch aborted",
			zap.Int("shifts", len(result.Shifts)),
			zap.Error(err),
		)
		return nil, ErrImportRejected
	}

	// Mark the upload immediately so today's upload reminders stand down.
	writeLastUploadMarker(ctx, s.rdb, s.clock(), s.loc, s.logger)

	resp := &dto.ImportResponse{
		Accepted:     len(result.Shifts),
		Discarded:    result.Discarded,
		Deduplicated: result.Deduplicated,
	}
	if !result.EarliestStart.IsZero() {
		resp.EarliestStart = result.EarliestStart.In(s.loc).Format("2006-01-02")
	}

	s.logger.Info("roster import committed",
		zap.Int("accepted", resp.Accepted),
		zap.Int("discarded", resp.Discarded),
		zap.Int("deduplicated", resp.Deduplicated),
	)
	return resp, nil
}

func (s *rosterService) StaffCalendarICS(ctx context.Context, staffID string) (string, error) {
	shifts, err := s.repo.Shift.ListUpcomingForStaff(ctx, staffID, s.clock().UTC(), 100)
	if err != nil {
		s.logger.Error("failed to load shifts for calendar feed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Yallburru Community Services//Roster//EN")

	for i := range shifts {
		shift := &shifts[i]
		event := cal.AddEvent(shift.ShiftID + "@yallburru")
		event.SetCreatedTime(shift.CreatedAt)
		event.SetDtStampTime(shift.UpdatedAt)
		event.SetStartAt(shift.StartAt)
		event.SetEndAt(shift.EndAt)
		event.SetSummary(fmt.Sprintf("%s shift - %s", shift.ShiftType, shift.LocationName))
		if shift.Address != "" {
			event.SetLocation(shift.Address)
		}
		event.SetDescription(ComposeShiftSMS(shift, s.loc))
	}

	return cal.Serialize(), nil
}

func (s *rosterService) PreviewSMS(ctx context.Context, shiftID string) (*dto.SMSPreviewResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("failed to load shift for SMS preview", zap.Error(err))
		return nil, err
	}

	return &dto.SMSPreviewResponse{
		ShiftID: shift.ShiftID,
		Message: ComposeShiftSMS(shift, s.loc),
	}, nil
}

// toShiftResponse converts a stored shift for the API. Display fields are
// wall-clock renderings in loc; StartAt/EndAt remain the true UTC instants
// so clients never compare against the shifted values.
func toShiftResponse(shift *model.Shift, loc *time.Location) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:              shift.ShiftID,
		ExternalShiftID: shift.ExternalShiftID,
		StaffID:         shift.StaffID,
		StaffName:       shift.StaffName,
		LocationName:    shift.LocationName,
		Address:         shift.Address,
		StartAt:         shift.StartAt.UTC().Format(time.RFC3339),
		EndAt:           shift.EndAt.UTC().Format(time.RFC3339),
		DisplayStart:    shift.StartAt.In(loc).Format("Mon 2 Jan 3:04 PM"),
		DisplayEnd:      shift.EndAt.In(loc).Format("Mon 2 Jan 3:04 PM"),
		Hours:           shift.Hours,
		Mileage:         shift.Mileage,
		Expense:         shift.Expense,
		Absent:          shift.Absent,
		Status:          shift.Status,
		CancelledReason: shift.CancelledReason,
		ShiftType:       shift.ShiftType,
		URL:             shift.URL,
		Note:            shift.Note,
	}
	if shift.ClockInAt != nil {
		v := shift.ClockInAt.UTC().Format(time.RFC3339)
		resp.ClockInAt = &v
	}
	if shift.ClockOutAt != nil {
		v := shift.ClockOutAt.UTC().Format(time.RFC3339)
		resp.ClockOutAt = &v
	}
	return resp
}
