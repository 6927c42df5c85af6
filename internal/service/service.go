package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/config"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/jwt"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/mailer"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// Service aggregate entry point for all services.
type Service struct {
	Auth       AuthService
	User       UserService
	Roster     RosterService
	Compliance ComplianceService
	Export     ExportService
	Article    ArticleService
	Contact    ContactService
	Settings   SettingsService
	Reminder   *ReminderScheduler
}

// NewService wires the service aggregate. loc is the org display timezone,
// already validated by config. rdb may be nil; services degrade to
// cache-less behaviour.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	jwtMgr *jwt.Manager,
	mail *mailer.Mailer,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	notifier := NewStoredNotifier(repo, rdb, mail, cfg.Mail.AdminTo, logger)
	compliance := NewComplianceService(repo, rdb, loc, logger)

	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, logger),
		User:       NewUserService(repo, logger),
		Roster:     NewRosterService(repo, rdb, loc, logger),
		Compliance: compliance,
		Export:     NewExportService(compliance, logger),
		Article:    NewArticleService(repo, logger),
		Contact:    NewContactService(repo, notifier, logger),
		Settings:   NewSettingsService(repo, logger),
		Reminder:   NewReminderScheduler(&cfg.Reminder, repo, rdb, notifier, loc, logger),
	}
}
