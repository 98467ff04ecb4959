package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// BirthdayService manages user birthdays and daily greetings.
type BirthdayService interface {
	// Set records or replaces the birthday of userID from a "dd/mm" date.
	Set(ctx context.Context, userID, date string) (*domain.Birthday, error)

	// Get returns the birthday of userID.
	// Returns domain.ErrNotFound if none is recorded.
	Get(ctx context.Context, userID string) (*domain.Birthday, error)

	// Remove deletes the birthday of userID.
	Remove(ctx context.Context, userID string) error

	// List returns all recorded birthdays ordered by month and day.
	List(ctx context.Context) ([]domain.Birthday, error)

	// On returns the birthdays celebrated on date.
	On(ctx context.Context, date time.Time) ([]domain.Birthday, error)

	// Greet posts the greeting for date through send, at most once per day.
	// The boolean is false when nobody has a birthday on date or the day
	// was already greeted. A day whose greeting fails is not marked greeted.
	Greet(ctx context.Context, date time.Time, send func(ctx context.Context, text string) error) (bool, error)
}
