package handler

import (
	"time"

	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// Handler aggregate entry point for all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Roster     *RosterHandler
	Compliance *ComplianceHandler
	Article    *ArticleHandler
	Contact    *ContactHandler
	Settings   *SettingsHandler
}

// NewHandler wires the handler aggregate. loc is the org display timezone;
// date-only request parameters are interpreted in it.
func NewHandler(svc *service.Service, jwtMgr *jwt.Manager, rdb *redis.Client, loc *time.Location) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth, jwtMgr, rdb),
		User:       NewUserHandler(svc.User),
		Roster:     NewRosterHandler(svc.Roster, loc),
		Compliance: NewComplianceHandler(svc.Compliance, svc.Export),
		Article:    NewArticleHandler(svc.Article),
		Contact:    NewContactHandler(svc.Contact),
		Settings:   NewSettingsHandler(svc.Settings),
	}
}
