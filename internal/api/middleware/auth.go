package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// JWTAuth validates the Authorization: Bearer <token> access token and
// injects user_id and role into the context. rdb may be nil; the blacklist
// check is then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token is invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			// Fail open on a Redis error; a dropped cache must not lock
			// every admin out.
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth checks that the authenticated user holds one of the allowed
// roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "permission denied")
		c.Abort()
	}
}
