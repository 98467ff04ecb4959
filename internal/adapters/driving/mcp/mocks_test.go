package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// mockBirthdayService is a mock implementation of driving.BirthdayService.
type mockBirthdayService struct {
	birthdays []domain.Birthday
	err       error
	asked     time.Time
}

func (m *mockBirthdayService) Set(_ context.Context, _, _ string) (*domain.Birthday, error) {
	return nil, m.err
}

func (m *mockBirthdayService) Get(_ context.Context, _ string) (*domain.Birthday, error) {
	return nil, domain.ErrNotFound
}

func (m *mockBirthdayService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockBirthdayService) List(_ context.Context) ([]domain.Birthday, error) {
	return m.birthdays, m.err
}

func (m *mockBirthdayService) On(_ context.Context, date time.Time) ([]domain.Birthday, error) {
	m.asked = date
	return m.birthdays, m.err
}

func (m *mockBirthdayService) Greet(
	_ context.Context, _ time.Time, _ func(context.Context, string) error,
) (bool, error) {
	return false, m.err
}
