package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
)

// mockNotifier records every message sent through it.
type mockNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

type sentMessage struct {
	channelID string
	text      string
}

func (m *mockNotifier) Send(_ context.Context, channelID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{channelID: channelID, text: text})
	return nil
}

func (m *mockNotifier) setErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *mockNotifier) messages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

// stubResponder returns a fixed reply for any text.
type stubResponder struct {
	reply string
}

func (s stubResponder) Respond(string) (string, bool) {
	return s.reply, s.reply != ""
}

func (s stubResponder) Conversions(string) []domain.Conversion {
	return nil
}

// flakyBirthdayStore fails ListByDate while listErr is set.
type flakyBirthdayStore struct {
	driven.BirthdayStore
	listErr error
}

func (f *flakyBirthdayStore) ListByDate(ctx context.Context, month time.Month, day int) ([]domain.Birthday, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.BirthdayStore.ListByDate(ctx, month, day)
}
