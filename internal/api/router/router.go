package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/api/handler"
	"github.com/TrialEnjoyer/yallburru-backend/internal/api/middleware"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// Setup builds the Gin engine with all routes wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(12 << 20)) // roster CSVs are the largest uploads

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public website endpoints
		v1.GET("/articles", h.Article.ListPublished)
		v1.GET("/articles/:slug", h.Article.GetBySlug)
		v1.GET("/our-people", h.User.OurPeople)
		v1.POST("/contact", middleware.RateLimit(rdb, 5, time.Minute), h.Contact.Submit)

		// calendar-app subscription feed; the staff ID in the URL is the
		// only credential phone calendar clients can carry
		v1.GET("/roster/feed/:staff_id", h.Roster.CalendarFeed)

		// auth (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// admin console
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			admin.POST("/auth/logout", h.Auth.Logout)
			admin.GET("/auth/me", h.Auth.Me)
			admin.POST("/auth/password", h.Auth.ChangePassword)

			admin.GET("/users", middleware.RoleAuth("admin"), h.User.ListUsers)

			roster := admin.Group("/roster")
			{
				roster.GET("", h.Roster.GetRange)
				roster.GET("/week", h.Roster.GetWeek)
				roster.POST("/import", middleware.RoleAuth("admin", "editor"), h.Roster.ImportCSV)
				roster.GET("/:shift_id/sms", h.Roster.PreviewSMS)
			}

			compliance := admin.Group("/compliance")
			{
				compliance.GET("/report", h.Compliance.Report)
				compliance.GET("/upcoming", h.Compliance.Upcoming)
				compliance.GET("/export", h.Compliance.Export)
			}

			articles := admin.Group("/articles")
			{
				articles.GET("", h.Article.List)
				articles.GET("/:id", h.Article.Get)
				articles.POST("", middleware.RoleAuth("admin", "editor"), h.Article.Create)
				articles.PUT("/:id", middleware.RoleAuth("admin", "editor"), h.Article.Update)
				articles.POST("/:id/publish", middleware.RoleAuth("admin", "editor"), h.Article.Publish)
				articles.POST("/:id/unpublish", middleware.RoleAuth("admin", "editor"), h.Article.Unpublish)
				articles.DELETE("/:id", middleware.RoleAuth("admin"), h.Article.Delete)
			}

			contact := admin.Group("/contact")
			{
				contact.GET("", h.Contact.List)
				contact.POST("/:id/handled", h.Contact.MarkHandled)
			}

			settings := admin.Group("/settings")
			{
				settings.GET("", h.Settings.Get)
				settings.PUT("", middleware.RoleAuth("admin"), h.Settings.Update)
			}
		}
	}

	return r
}
