package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
)

// notificationLog implements driven.NotificationLog.
type notificationLog struct {
	store *Store
}

var _ driven.NotificationLog = (*notificationLog)(nil)

// Claim records the UTC calendar day of date. The primary key makes the
// insert a no-op for an already claimed day, so only one caller wins even
// across processes sharing the database.
func (l *notificationLog) Claim(ctx context.Context, date time.Time) (bool, error) {
	res, err := l.store.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO notification_log (day, claimed_at) VALUES (?, ?)",
		date.UTC().Format(time.DateOnly), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("claiming notification day: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claiming notification day: %w", err)
	}
	return n == 1, nil
}

// Release deletes the claim on the UTC calendar day of date.
func (l *notificationLog) Release(ctx context.Context, date time.Time) error {
	_, err := l.store.db.ExecContext(ctx,
		"DELETE FROM notification_log WHERE day = ?", date.UTC().Format(time.DateOnly))
	if err != nil {
		return fmt.Errorf("releasing notification day: %w", err)
	}
	return nil
}
