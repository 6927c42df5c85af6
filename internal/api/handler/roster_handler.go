package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// maxRosterUploadBytes caps roster CSV uploads at 10 MB.
const maxRosterUploadBytes = 10 << 20

// RosterHandler shift roster endpoints. Date-only query parameters are
// wall-clock dates in the org timezone, not UTC; parsing them as UTC would
// shift week and range bounds by a day for zones west of UTC.
type RosterHandler struct {
	rosterSvc service.RosterService
	loc       *time.Location
}

// NewRosterHandler creates a RosterHandler.
func NewRosterHandler(rosterSvc service.RosterService, loc *time.Location) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc, loc: loc}
}

// GetWeek returns the calendar week of shifts containing ?reference
// (default: this week).
// GET /api/v1/admin/roster/week
func (h *RosterHandler) GetWeek(c *gin.Context) {
	var req dto.WeekQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	var reference time.Time
	if req.Reference != "" {
		reference, _ = time.ParseInLocation("2006-01-02", req.Reference, h.loc)
	}

	week, err := h.rosterSvc.GetWeek(c.Request.Context(), reference)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, week)
}

// GetRange returns shifts in a closed date range.
// GET /api/v1/admin/roster
func (h *RosterHandler) GetRange(c *gin.Context) {
	var req dto.RangeQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	from, _ := time.ParseInLocation("2006-01-02", req.From, h.loc)
	to, _ := time.ParseInLocation("2006-01-02", req.To, h.loc)
	if to.Before(from) {
		response.BadRequest(c, 20001, "the range end precedes its start")
		return
	}
	// Closed range: include the whole final day.
	to = to.AddDate(0, 0, 1).Add(-time.Millisecond)

	shifts, err := h.rosterSvc.GetRange(c.Request.Context(), from, to, req.StaffID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, shifts)
}

// ImportCSV accepts a multipart roster CSV upload and commits it as one
// batch.
// POST /api/v1/admin/roster/import
func (h *RosterHandler) ImportCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 20002, "missing file field in upload")
		return
	}
	defer file.Close()

	if header.Size > maxRosterUploadBytes {
		response.BadRequest(c, 20003, "uploaded file is too large")
		return
	}
	if header.Filename != "" && !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		response.BadRequest(c, 20004, "only .csv files are accepted")
		return
	}

	result, err := h.rosterSvc.ImportCSV(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyImport):
			response.BadRequest(c, 20005, "the uploaded file contains no importable shifts")
		case errors.Is(err, service.ErrImportRejected):
			response.Error(c, http.StatusUnprocessableEntity, 20006, "failed to import events")
		default:
			response.BadRequest(c, 20007, err.Error())
		}
		return
	}

	response.OK(c, result)
}

// CalendarFeed serves a staff member's shifts as an iCalendar feed for
// subscription from phone calendar apps.
// GET /api/v1/roster/feed/:staff_id.ics
func (h *RosterHandler) CalendarFeed(c *gin.Context) {
	staffID := strings.TrimSuffix(c.Param("staff_id"), ".ics")
	if staffID == "" {
		response.BadRequest(c, 20008, "missing staff id")
		return
	}

	feed, err := h.rosterSvc.StaffCalendarICS(c.Request.Context(), staffID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="roster.ics"`)
	c.String(http.StatusOK, feed)
}

// PreviewSMS renders the reminder SMS text for one shift for copy/paste.
// GET /api/v1/admin/roster/:shift_id/sms
func (h *RosterHandler) PreviewSMS(c *gin.Context) {
	shiftID := c.Param("shift_id")

	preview, err := h.rosterSvc.PreviewSMS(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, service.ErrShiftNotFound) {
			response.NotFound(c, 20009, "shift not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, preview)
}
