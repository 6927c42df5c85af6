package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// ComplianceHandler compliance dashboard endpoints.
type ComplianceHandler struct {
	complianceSvc service.ComplianceService
	exportSvc     service.ExportService
}

// NewComplianceHandler creates a ComplianceHandler.
func NewComplianceHandler(complianceSvc service.ComplianceService, exportSvc service.ExportService) *ComplianceHandler {
	return &ComplianceHandler{complianceSvc: complianceSvc, exportSvc: exportSvc}
}

// Report returns the 4-week compliance summaries.
// GET /api/v1/admin/compliance/report
func (h *ComplianceHandler) Report(c *gin.Context) {
	report, err := h.complianceSvc.Report(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, report)
}

// Upcoming returns the attention list of upcoming shifts for deficient
// staff.
// GET /api/v1/admin/compliance/upcoming
func (h *ComplianceHandler) Upcoming(c *gin.Context) {
	var req dto.UpcomingQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	views, err := h.complianceSvc.UpcomingShifts(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, views)
}

// Export streams the compliance report as an .xlsx download.
// GET /api/v1/admin/compliance/export
func (h *ComplianceHandler) Export(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportComplianceReport(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoData) {
			response.NotFound(c, 21001, "no compliance data in the reporting window")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}
