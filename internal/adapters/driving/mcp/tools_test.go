package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/services"
)

func newTestServer(t *testing.T, birthdays *mockBirthdayService) *Server {
	t.Helper()
	ports := &Ports{Responder: services.NewResponder()}
	if birthdays != nil {
		ports.Birthdays = birthdays
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	server.now = func() time.Time { return time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC) }
	return server
}

func TestServer_handleConvert(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, nil)

	t.Run("converts every quantity", func(t *testing.T) {
		_, output, err := server.handleConvert(ctx, nil, ConvertInput{Text: "171 cm tall and 140 pounds"})

		require.NoError(t, err)
		assert.True(t, output.Matched)
		assert.Equal(t, "171 cm is 67.32 inches\n140 lbs is 63.50 kg\n", output.Reply)
		require.Len(t, output.Conversions, 2)
		assert.Equal(t, 171.0, output.Conversions[0].Value)
		assert.Equal(t, "cm", output.Conversions[0].Unit)
		assert.Equal(t, "inches", output.Conversions[0].ConvertedUnit)
		assert.InDelta(t, 63.5029, output.Conversions[1].ConvertedValue, 1e-3)
	})

	t.Run("no quantities", func(t *testing.T) {
		_, output, err := server.handleConvert(ctx, nil, ConvertInput{Text: "hello there"})

		require.NoError(t, err)
		assert.False(t, output.Matched)
		assert.Empty(t, output.Reply)
		assert.Empty(t, output.Conversions)
	})
}

func TestServer_handleListUnits(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, nil)

	t.Run("all units", func(t *testing.T) {
		_, output, err := server.handleListUnits(ctx, nil, ListUnitsInput{})
		require.NoError(t, err)
		assert.Equal(t, 12, output.Count)
		assert.Len(t, output.Units, 12)
	})

	t.Run("filtered by category", func(t *testing.T) {
		_, output, err := server.handleListUnits(ctx, nil, ListUnitsInput{Category: "Temperature"})
		require.NoError(t, err)
		require.Equal(t, 2, output.Count)
		assert.Equal(t, "celsius", output.Units[0].Name)
		assert.Equal(t, "fahrenheit", output.Units[0].PairsTo)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, _, err := server.handleListUnits(ctx, nil, ListUnitsInput{Category: "volume"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleBirthdaysToday(t *testing.T) {
	ctx := context.Background()

	t.Run("without birthday service", func(t *testing.T) {
		server := newTestServer(t, nil)
		_, output, err := server.handleBirthdaysToday(ctx, nil, BirthdaysInput{})
		require.NoError(t, err)
		assert.Equal(t, "19/10", output.Date)
		assert.Empty(t, output.Users)
	})

	t.Run("lists users", func(t *testing.T) {
		mock := &mockBirthdayService{birthdays: []domain.Birthday{
			{UserID: "42", Day: 19, Month: time.October},
		}}
		server := newTestServer(t, mock)

		_, output, err := server.handleBirthdaysToday(ctx, nil, BirthdaysInput{})
		require.NoError(t, err)
		assert.Equal(t, []string{"42"}, output.Users)
		assert.Equal(t, time.October, mock.asked.Month())
	})

	t.Run("propagates errors", func(t *testing.T) {
		server := newTestServer(t, &mockBirthdayService{err: errors.New("db locked")})
		_, _, err := server.handleBirthdaysToday(ctx, nil, BirthdaysInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db locked")
	})
}
