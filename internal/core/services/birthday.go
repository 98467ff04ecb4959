package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
	"github.com/custodia-labs/unitbot/internal/logger"
)

// Ensure BirthdayService implements the interface.
var _ driving.BirthdayService = (*BirthdayService)(nil)

// BirthdayService manages birthdays and the once-a-day greeting.
type BirthdayService struct {
	store driven.BirthdayStore
	log   driven.NotificationLog
	now   func() time.Time
}

// NewBirthdayService creates a new birthday service.
func NewBirthdayService(store driven.BirthdayStore, log driven.NotificationLog) *BirthdayService {
	return &BirthdayService{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Set records or replaces the birthday of userID.
func (s *BirthdayService) Set(ctx context.Context, userID, date string) (*domain.Birthday, error) {
	day, month, err := domain.ParseBirthdate(date)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	b := domain.Birthday{
		UserID:    strings.TrimSpace(userID),
		Day:       day,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.store.Get(ctx, b.UserID); err == nil {
		b.CreatedAt = existing.CreatedAt
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("saving birthday: %w", err)
	}
	logger.Info("birthday for %s set to %s", b.UserID, b)
	return &b, nil
}

// Get returns the birthday of userID.
func (s *BirthdayService) Get(ctx context.Context, userID string) (*domain.Birthday, error) {
	return s.store.Get(ctx, userID)
}

// Remove deletes the birthday of userID.
func (s *BirthdayService) Remove(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID)
}

// List returns all birthdays.
func (s *BirthdayService) List(ctx context.Context) ([]domain.Birthday, error) {
	return s.store.List(ctx)
}

// On returns the birthdays celebrated on date, including 29/02
// birthdays on 28/02 of non-leap years.
func (s *BirthdayService) On(ctx context.Context, date time.Time) ([]domain.Birthday, error) {
	found, err := s.store.ListByDate(ctx, date.Month(), date.Day())
	if err != nil {
		return nil, fmt.Errorf("listing birthdays: %w", err)
	}

	if date.Month() == time.February && date.Day() == 28 {
		leap, err := s.store.ListByDate(ctx, time.February, 29)
		if err != nil {
			return nil, fmt.Errorf("listing leap day birthdays: %w", err)
		}
		for _, b := range leap {
			if b.Matches(date) {
				found = append(found, b)
			}
		}
	}
	return found, nil
}

// Greet looks up the birthdays on date, claims the day, and posts the
// greeting through send. A failed send releases the claim so a later
// message can retry.
func (s *BirthdayService) Greet(
	ctx context.Context, date time.Time, send func(ctx context.Context, text string) error,
) (bool, error) {
	day := date.UTC().Format(time.DateOnly)

	birthdays, err := s.On(ctx, date)
	if err != nil {
		return false, err
	}
	if len(birthdays) == 0 {
		logger.Debug("no birthdays on %s", day)
		return false, nil
	}

	claimed, err := s.log.Claim(ctx, date)
	if err != nil {
		return false, fmt.Errorf("claiming %s: %w", day, err)
	}
	if !claimed {
		return false, nil
	}

	if err := send(ctx, greeting(birthdays)); err != nil {
		if relErr := s.log.Release(ctx, date); relErr != nil {
			logger.Warn("releasing greeting for %s: %v", day, relErr)
		}
		return false, fmt.Errorf("sending greeting for %s: %w", day, err)
	}
	return true, nil
}

func greeting(birthdays []domain.Birthday) string {
	mentions := make([]string, len(birthdays))
	for i, b := range birthdays {
		mentions[i] = "<@" + b.UserID + ">"
	}
	return "Happy birthday " + strings.Join(mentions, ", ") + "! 🎂"
}
