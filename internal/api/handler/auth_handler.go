package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// AuthHandler admin-console authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
	jwtMgr  *jwt.Manager
	rdb     *redis.Client
}

// NewAuthHandler creates an AuthHandler. rdb may be nil; logout then
// degrades to client-side token disposal.
func NewAuthHandler(authSvc service.AuthService, jwtMgr *jwt.Manager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, jwtMgr: jwtMgr, rdb: rdb}
}

// Login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "incorrect email or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout blacklists the presented access token for its remaining lifetime.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.rdb == nil {
		response.OK(c, nil)
		return
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		response.OK(c, nil)
		return
	}
	claims, err := h.jwtMgr.ParseToken(parts[1])
	if err != nil || claims.ExpiresAt == nil {
		response.OK(c, nil)
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		_ = h.rdb.BlacklistToken(c.Request.Context(), claims.ID, ttl)
	}
	response.OK(c, nil)
}

// Refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			response.Unauthorized(c, 11002, "refresh token is invalid or expired")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Me returns the authenticated user.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 11003, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// ChangePassword
// POST /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.BadRequest(c, 11004, "current password is incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 11003, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
