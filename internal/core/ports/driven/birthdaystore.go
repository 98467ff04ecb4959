package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// BirthdayStore persists user birthdays.
type BirthdayStore interface {
	// Save stores or updates a birthday keyed by user ID.
	Save(ctx context.Context, birthday domain.Birthday) error

	// Get retrieves the birthday of a user.
	// Returns domain.ErrNotFound if none exists.
	Get(ctx context.Context, userID string) (*domain.Birthday, error)

	// Delete removes the birthday of a user.
	// Returns domain.ErrNotFound if none exists.
	Delete(ctx context.Context, userID string) error

	// List returns all birthdays ordered by month, day, then user ID.
	List(ctx context.Context) ([]domain.Birthday, error)

	// ListByDate returns birthdays on the given month and day.
	ListByDate(ctx context.Context, month time.Month, day int) ([]domain.Birthday, error)
}

// NotificationLog remembers which days have had their birthday announcements.
type NotificationLog interface {
	// Claim marks date as announced. It returns true only for the first
	// claim of a calendar day; later claims return false.
	Claim(ctx context.Context, date time.Time) (bool, error)

	// Release forgets the claim on date so the day can be claimed again.
	// Releasing an unclaimed day is not an error.
	Release(ctx context.Context, date time.Time) error
}
