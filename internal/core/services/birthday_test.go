package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitbot/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitbot/internal/core/domain"
)

func newTestBirthdayService() *BirthdayService {
	svc := NewBirthdayService(memory.NewBirthdayStore(), memory.NewNotificationLog())
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestBirthdayService_SetAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()

	b, err := svc.Set(ctx, "42", "16/11")
	require.NoError(t, err)
	assert.Equal(t, 16, b.Day)
	assert.Equal(t, time.November, b.Month)

	got, err := svc.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "16/11", got.String())
}

func TestBirthdayService_SetPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()

	first, err := svc.Set(ctx, "42", "01/01")
	require.NoError(t, err)

	svc.now = func() time.Time { return first.CreatedAt.Add(24 * time.Hour) }
	second, err := svc.Set(ctx, "42", "02/01")
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestBirthdayService_SetInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()

	for _, date := range []string{"", "31/02", "00/05", "12/13", "ab/cd", "1/2/3"} {
		_, err := svc.Set(ctx, "42", date)
		assert.ErrorIs(t, err, domain.ErrInvalidBirthday, date)
	}

	_, err := svc.Set(ctx, " ", "01/01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBirthdayService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()

	_, err := svc.Set(ctx, "42", "16/11")
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "42"))

	_, err = svc.Get(ctx, "42")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.ErrorIs(t, svc.Remove(ctx, "42"), domain.ErrNotFound)
}

func TestBirthdayService_On(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()

	_, _ = svc.Set(ctx, "a", "28/02")
	_, _ = svc.Set(ctx, "b", "29/02")
	_, _ = svc.Set(ctx, "c", "01/03")

	nonLeap, err := svc.On(ctx, time.Date(2027, time.February, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, userIDs(nonLeap))

	leap, err := svc.On(ctx, time.Date(2028, time.February, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, userIDs(leap))

	leapDay, err := svc.On(ctx, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, userIDs(leapDay))
}

// recordGreeting returns a send func that stores what it posts.
func recordGreeting(posted *[]string) func(context.Context, string) error {
	return func(_ context.Context, text string) error {
		*posted = append(*posted, text)
		return nil
	}
}

func TestBirthdayService_GreetOncePerDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()
	_, _ = svc.Set(ctx, "42", "19/10")
	_, _ = svc.Set(ctx, "7", "19/10")

	day := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	var posted []string

	ok, err := svc.Greet(ctx, day, recordGreeting(&posted))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, posted, 1)
	assert.Contains(t, posted[0], "<@42>")
	assert.Contains(t, posted[0], "<@7>")
	assert.Contains(t, posted[0], "Happy birthday")

	ok, err = svc.Greet(ctx, day.Add(2*time.Hour), recordGreeting(&posted))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, posted, 1)
}

func TestBirthdayService_GreetNobody(t *testing.T) {
	svc := newTestBirthdayService()
	var posted []string

	ok, err := svc.Greet(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), recordGreeting(&posted))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, posted)
}

func TestBirthdayService_GreetRetriesAfterStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &flakyBirthdayStore{BirthdayStore: memory.NewBirthdayStore()}
	svc := NewBirthdayService(store, memory.NewNotificationLog())
	_, err := svc.Set(ctx, "42", "16/11")
	require.NoError(t, err)

	day := time.Date(2026, time.November, 16, 6, 0, 0, 0, time.UTC)
	var posted []string

	store.listErr = errors.New("db busy")
	ok, err := svc.Greet(ctx, day, recordGreeting(&posted))
	assert.Error(t, err)
	assert.False(t, ok)

	store.listErr = nil
	ok, err = svc.Greet(ctx, day, recordGreeting(&posted))
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, posted, 1)
	assert.Contains(t, posted[0], "<@42>")
}

func TestBirthdayService_GreetReleasesDayWhenSendFails(t *testing.T) {
	ctx := context.Background()
	svc := newTestBirthdayService()
	_, _ = svc.Set(ctx, "42", "16/11")
	day := time.Date(2026, time.November, 16, 6, 0, 0, 0, time.UTC)

	ok, err := svc.Greet(ctx, day, func(context.Context, string) error {
		return errors.New("gateway down")
	})
	assert.Error(t, err)
	assert.False(t, ok)

	var posted []string
	ok, err = svc.Greet(ctx, day, recordGreeting(&posted))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, posted, 1)
}

func userIDs(list []domain.Birthday) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.UserID
	}
	return out
}
