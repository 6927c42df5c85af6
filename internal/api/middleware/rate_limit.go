package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// RateLimit Redis-backed fixed-window rate limiting per client IP and
// route. A nil rdb or a Redis error degrades to letting the request
// through, same policy as JWTAuth.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
