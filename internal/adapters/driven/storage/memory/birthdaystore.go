package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
)

// Ensure the stores implement the interfaces.
var (
	_ driven.BirthdayStore   = (*BirthdayStore)(nil)
	_ driven.NotificationLog = (*NotificationLog)(nil)
)

// BirthdayStore is an in-memory implementation of driven.BirthdayStore.
type BirthdayStore struct {
	mu        sync.RWMutex
	birthdays map[string]domain.Birthday
}

// NewBirthdayStore creates a new in-memory birthday store.
func NewBirthdayStore() *BirthdayStore {
	return &BirthdayStore{
		birthdays: make(map[string]domain.Birthday),
	}
}

// Save stores or updates a birthday.
func (s *BirthdayStore) Save(_ context.Context, b domain.Birthday) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.birthdays[b.UserID] = b
	return nil
}

// Get retrieves the birthday of a user.
func (s *BirthdayStore) Get(_ context.Context, userID string) (*domain.Birthday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.birthdays[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// Delete removes the birthday of a user.
func (s *BirthdayStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.birthdays[userID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.birthdays, userID)
	return nil
}

// List returns all birthdays in calendar order.
func (s *BirthdayStore) List(_ context.Context) ([]domain.Birthday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Birthday, 0, len(s.birthdays))
	for _, b := range s.birthdays {
		result = append(result, b)
	}
	sortBirthdays(result)
	return result, nil
}

// ListByDate returns birthdays on month and day.
func (s *BirthdayStore) ListByDate(_ context.Context, month time.Month, day int) ([]domain.Birthday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Birthday
	for _, b := range s.birthdays {
		if b.Month == month && b.Day == day {
			result = append(result, b)
		}
	}
	sortBirthdays(result)
	return result, nil
}

func sortBirthdays(list []domain.Birthday) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Month != list[j].Month {
			return list[i].Month < list[j].Month
		}
		if list[i].Day != list[j].Day {
			return list[i].Day < list[j].Day
		}
		return list[i].UserID < list[j].UserID
	})
}

// NotificationLog is an in-memory implementation of driven.NotificationLog.
type NotificationLog struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

// NewNotificationLog creates a new in-memory notification log.
func NewNotificationLog() *NotificationLog {
	return &NotificationLog{claimed: make(map[string]struct{})}
}

// Claim marks the calendar day of date as announced.
func (l *NotificationLog) Claim(_ context.Context, date time.Time) (bool, error) {
	day := date.UTC().Format(time.DateOnly)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.claimed[day]; ok {
		return false, nil
	}
	l.claimed[day] = struct{}{}
	return true, nil
}

// Release forgets the claim on the calendar day of date.
func (l *NotificationLog) Release(_ context.Context, date time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.claimed, date.UTC().Format(time.DateOnly))
	return nil
}
