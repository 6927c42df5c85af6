package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// MustGetUserID extracts user_id from the Gin context. When the JWT
// middleware did not inject it, a 401 is written and ok is false; callers
// should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}
