package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/pkg/redis"
)

// Redis keys shared by the roster importer and the reminder scheduler.
const (
	lastUploadKey      = "roster:last_upload"
	reminderFiredKey   = "reminder:fired:" // + slot + ":" + date
	shiftReminderKey   = "reminder:shift:" // + shift ID
	complianceCacheKey = "compliance:weekly"
)

// lastUploadMarker mirrors the persisted upload marker: the import commit
// time plus its local calendar date, which decides whether an upload
// reminder should still fire "today".
type lastUploadMarker struct {
	Timestamp int64  `json:"timestamp"` // epoch millis
	Date      string `json:"date"`      // YYYY-MM-DD in the org timezone
}

// writeLastUploadMarker records a successful roster import. Failures are
// logged and swallowed: the marker only suppresses reminders.
func writeLastUploadMarker(ctx context.Context, rdb *redis.Client, now time.Time, loc *time.Location, logger *zap.Logger) {
	if rdb == nil {
		return
	}
	marker := lastUploadMarker{
		Timestamp: now.UnixMilli(),
		Date:      now.In(loc).Format("2006-01-02"),
	}
	b, err := json.Marshal(marker)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, lastUploadKey, string(b), 0); err != nil {
		logger.Warn("failed to write last-upload marker", zap.Error(err))
	}
}

// readLastUploadMarker returns the stored marker, or nil when absent or
// corrupt. Corruption degrades to "no marker" so reminders err on firing.
func readLastUploadMarker(ctx context.Context, rdb *redis.Client, logger *zap.Logger) *lastUploadMarker {
	if rdb == nil {
		return nil
	}
	raw, ok, err := rdb.Get(ctx, lastUploadKey)
	if err != nil || !ok {
		return nil
	}
	var marker lastUploadMarker
	if err := json.Unmarshal([]byte(raw), &marker); err != nil {
		logger.Warn("corrupt last-upload marker, treating as absent", zap.Error(err))
		return nil
	}
	if marker.Timestamp <= 0 || marker.Date == "" {
		return nil
	}
	return &marker
}
