package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── export errors ──

var (
	ErrExportNoData       = errors.New("no compliance data in the reporting window")
	ErrExportGenerateFail = errors.New("failed to generate Excel file")
)

// ExportService Excel exports for the admin console.
//
// The compliance export mirrors the dashboard report: one summary sheet
// with per-staff deficiency counts, and one detail sheet listing every
// incomplete shift in the window. The buffer is returned to the handler,
// which sets the download headers and streams it.
type ExportService interface {
	// ExportComplianceReport renders the current compliance report as .xlsx.
	// Returns the file content and a suggested filename.
	ExportComplianceReport(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	compliance ComplianceService
	logger     *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(compliance ComplianceService, logger *zap.Logger) ExportService {
	return &exportService{compliance: compliance, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportComplianceReport renders the compliance report as an Excel workbook.
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - Sheet "Summary": one row per staff member, ordered worst-first
//     (same ordering as the dashboard)
//   - Sheet "Incomplete Shifts": every shift with a missing clock-in,
//     clock-out or note, grouped under its staff member

func (s *exportService) ExportComplianceReport(ctx context.Context) (*bytes.Buffer, string, error) {
	// 1. reuse the dashboard report so export and screen always agree
	report, err := s.compliance.Report(ctx)
	if err != nil {
		s.logger.Error("failed to build compliance report for export", zap.Error(err))
		return nil, "", err
	}
	if len(report.Summaries) == 0 {
		return nil, "", ErrExportNoData
	}

	// 2. generate the workbook
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	idx, _ := f.NewSheet(summarySheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(summarySheet, "A", "A", 28)
	f.SetColWidth(summarySheet, "B", "F", 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title row
	f.SetCellValue(summarySheet, "A1",
		fmt.Sprintf("Shift compliance %s to %s", report.WindowStart, report.WindowEnd))
	f.MergeCell(summarySheet, "A1", "F1")
	f.SetCellStyle(summarySheet, "A1", "A1", headerStyle)

	// header row
	headers := []string{"Staff", "Shifts", "Missing clock-in", "Missing clock-out", "Missing notes", "Total"}
	for i, h := range headers {
		f.SetCellValue(summarySheet, cell(colName(i), 2), h)
		f.SetCellStyle(summarySheet, cell(colName(i), 2), cell(colName(i), 2), headerStyle)
	}

	// data rows, already sorted worst-first by the report
	row := 3
	for i := range report.Summaries {
		sum := &report.Summaries[i]
		f.SetCellValue(summarySheet, cell("A", row), sum.StaffName)
		f.SetCellValue(summarySheet, cell("B", row), sum.TotalShifts)
		f.SetCellValue(summarySheet, cell("C", row), sum.MissingClockIn)
		f.SetCellValue(summarySheet, cell("D", row), sum.MissingClockOut)
		f.SetCellValue(summarySheet, cell("E", row), sum.MissingNotes)
		f.SetCellValue(summarySheet, cell("F", row), sum.TotalDeficiency())
		row++
	}

	// 3. detail sheet
	detailSheet := "Incomplete Shifts"
	f.NewSheet(detailSheet)
	f.SetColWidth(detailSheet, "A", "A", 28)
	f.SetColWidth(detailSheet, "B", "C", 22)
	f.SetColWidth(detailSheet, "D", "F", 14)

	detailHeaders := []string{"Staff", "Start", "End", "Clock-in", "Clock-out", "Note"}
	for i, h := range detailHeaders {
		f.SetCellValue(detailSheet, cell(colName(i), 1), h)
		f.SetCellStyle(detailSheet, cell(colName(i), 1), cell(colName(i), 1), headerStyle)
	}

	row = 2
	for i := range report.Summaries {
		sum := &report.Summaries[i]
		for _, shift := range sum.IncompleteShifts {
			f.SetCellValue(detailSheet, cell("A", row), sum.StaffName)
			f.SetCellValue(detailSheet, cell("B", row), shift.DisplayStart)
			f.SetCellValue(detailSheet, cell("C", row), shift.DisplayEnd)
			f.SetCellValue(detailSheet, cell("D", row), checkMark(shift.ClockInAt != nil))
			f.SetCellValue(detailSheet, cell("E", row), checkMark(shift.ClockOutAt != nil))
			f.SetCellValue(detailSheet, cell("F", row), checkMark(shift.Note != nil && *shift.Note != ""))
			row++
		}
	}

	// 4. write the buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write Excel buffer", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("compliance_%s.xlsx", report.WindowEnd)
	return buf, filename, nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func checkMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "MISSING"
}
