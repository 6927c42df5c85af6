package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/mailer"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// Notifier is the notification sink. Tag-based de-duplication is the sink's
// responsibility: a second Notify with the same non-empty tag inside the
// de-dup window is dropped silently.
type Notifier interface {
	Notify(ctx context.Context, notification *model.Notification) error
}

// tagDedupTTL bounds how long a tag suppresses repeats. Reminder tags embed
// the shift or slot identity, so a couple of hours is plenty.
const tagDedupTTL = 2 * time.Hour

// storedNotifier persists notifications and mirrors them to the admin
// mailbox when SMTP is configured. A nil Redis client disables de-dup but
// not delivery.
type storedNotifier struct {
	repo    *repository.Repository
	rdb     *redis.Client
	mail    *mailer.Mailer
	adminTo string
	logger  *zap.Logger
}

// NewStoredNotifier creates the persisted notification sink.
func NewStoredNotifier(repo *repository.Repository, rdb *redis.Client, mail *mailer.Mailer, adminTo string, logger *zap.Logger) Notifier {
	return &storedNotifier{
		repo:    repo,
		rdb:     rdb,
		mail:    mail,
		adminTo: adminTo,
		logger:  logger,
	}
}

func (n *storedNotifier) Notify(ctx context.Context, notification *model.Notification) error {
	if notification.Tag != "" && n.rdb != nil {
		fresh, err := n.rdb.SetNX(ctx, "notify:tag:"+notification.Tag, "1", tagDedupTTL)
		if err != nil {
			// De-dup is best effort; deliver anyway.
			n.logger.Warn("notification de-dup check failed", zap.Error(err))
		} else if !fresh {
			return nil
		}
	}

	if err := n.repo.Notification.Create(ctx, notification); err != nil {
		return err
	}

	if n.mail != nil && n.mail.Enabled() && n.adminTo != "" {
		if err := n.mail.Send(n.adminTo, notification.Title, notification.Content); err != nil {
			// Mail mirroring degrades silently, the row is already stored.
			n.logger.Warn("notification mail mirror failed", zap.Error(err))
		}
	}

	return nil
}
