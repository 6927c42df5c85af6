package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// SettingsHandler site-settings endpoints.
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// Get
// GET /api/v1/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, settings)
}

// Update
// PUT /api/v1/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	settings, err := h.settingsSvc.Update(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, settings)
}
