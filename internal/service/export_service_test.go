package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

func setupTestExportService(t *testing.T, now time.Time) (ExportService, *mockShiftRepo) {
	t.Helper()
	compliance, shiftRepo, _ := newTestComplianceService(t, now)
	return NewExportService(compliance, zap.NewNop()), shiftRepo
}

func TestExportComplianceReport_NoData(t *testing.T) {
	loc := mustLoadBrisbane(t)
	svc, _ := setupTestExportService(t, time.Date(2024, 3, 20, 10, 0, 0, 0, loc))

	_, _, err := svc.ExportComplianceReport(context.Background())
	if !errors.Is(err, ErrExportNoData) {
		t.Errorf("expected ErrExportNoData, got %v", err)
	}
}

func TestExportComplianceReport_Success(t *testing.T) {
	loc := mustLoadBrisbane(t)
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, loc)
	svc, shiftRepo := setupTestExportService(t, now)

	shift := makeShift("S1", "ST01", "Alex Nguyen", time.Date(2024, 3, 15, 9, 0, 0, 0, loc).UTC())
	shift.Note = nil
	_ = shiftRepo.UpsertBatch(context.Background(), []model.Shift{shift})

	buf, filename, err := svc.ExportComplianceReport(context.Background())
	if err != nil {
		t.Fatalf("ExportComplianceReport failed: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("exported buffer must not be empty")
	}
	// .xlsx files are zip archives and start with PK.
	header := buf.Bytes()[:2]
	if header[0] != 0x50 || header[1] != 0x4B {
		t.Error("output is not a valid xlsx (missing PK header)")
	}
	if !strings.HasPrefix(filename, "compliance_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}
	// The filename dates the window end so repeated exports sort cleanly.
	if !strings.Contains(filename, "2024-03-17") {
		t.Errorf("expected the window end in the filename, got %q", filename)
	}
}
