package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// ContactHandler public contact form and its admin inbox.
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// Submit public contact-form submission.
// POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	submission, err := h.contactSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, submission)
}

// List admin inbox.
// GET /api/v1/admin/contact
func (h *ContactHandler) List(c *gin.Context) {
	var req dto.ContactListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	submissions, total, err := h.contactSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, submissions, total, req.GetPage(), req.GetPageSize())
}

// MarkHandled
// POST /api/v1/admin/contact/:id/handled
func (h *ContactHandler) MarkHandled(c *gin.Context) {
	if err := h.contactSvc.MarkHandled(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			response.NotFound(c, 23001, "contact submission not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
