package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// UserHandler staff accounts and the public team page.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers admin staff-account list.
// GET /api/v1/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), page.GetPage(), page.GetPageSize())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, page.GetPage(), page.GetPageSize())
}

// OurPeople public team profiles.
// GET /api/v1/our-people
func (h *UserHandler) OurPeople(c *gin.Context) {
	profiles, err := h.userSvc.ListPublicProfiles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, profiles)
}
