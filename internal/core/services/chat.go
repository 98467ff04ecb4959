package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
	"github.com/custodia-labs/unitbot/internal/logger"
)

// AboutText is the reply to the about command.
const AboutText = "I provide unit conversion capabilities!"

// limiterSweepSize is the number of tracked channels at which idle
// limiters are evicted.
const limiterSweepSize = 256

// Ensure ChatService implements the interface.
var _ driving.ChatHandler = (*ChatService)(nil)

// ChatService routes inbound messages to commands, birthday greetings and
// the unit responder. One instance serves one transport.
type ChatService struct {
	responder driving.Responder
	birthdays driving.BirthdayService
	notifier  driven.Notifier

	mu        sync.Mutex
	settings  domain.Settings
	limiters  map[string]*rate.Limiter
	sweepSize int
	lastDay   string
}

// NewChatService creates a chat service.
// birthdays and notifier are optional; without them no greetings are sent.
func NewChatService(
	responder driving.Responder,
	birthdays driving.BirthdayService,
	notifier driven.Notifier,
	settings domain.Settings,
) *ChatService {
	if responder == nil {
		responder = NewResponder()
	}
	return &ChatService{
		responder: responder,
		birthdays: birthdays,
		notifier:  notifier,
		settings:  settings,
		limiters:  make(map[string]*rate.Limiter),
		sweepSize: limiterSweepSize,
	}
}

// UpdateSettings swaps in new settings. Existing channel limiters are
// dropped so the new rate applies from the next reply.
func (s *ChatService) UpdateSettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.limiters = make(map[string]*rate.Limiter)
	logger.Info("chat settings updated: %d replies/min, burst %d",
		settings.RateLimit.RepliesPerMinute, settings.RateLimit.Burst)
}

// Settings returns the settings currently in effect.
func (s *ChatService) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// HandleMessage processes one inbound message.
func (s *ChatService) HandleMessage(ctx context.Context, msg domain.Message) (domain.Reply, bool, error) {
	s.greetIfNewDay(ctx, msg)

	if msg.AuthorIsBot {
		return domain.Reply{}, false, nil
	}

	settings := s.Settings()
	var (
		content string
		ok      bool
		err     error
	)
	if prefix := settings.CommandPrefix; prefix != "" && strings.HasPrefix(msg.Content, prefix) {
		content, ok, err = s.runCommand(ctx, msg, strings.TrimPrefix(msg.Content, prefix), settings)
	} else {
		content, ok = s.responder.Respond(msg.Content)
	}
	if err != nil || !ok {
		return domain.Reply{}, false, err
	}

	if !s.allow(msg.ChannelID, settings.RateLimit) {
		logger.Warn("reply in channel %s dropped: %v", msg.ChannelID, domain.ErrRateLimited)
		return domain.Reply{}, false, nil
	}

	return domain.Reply{
		ChannelID: msg.ChannelID,
		InReplyTo: msg.ID,
		Content:   content,
	}, true, nil
}

// greetIfNewDay sends the birthday greeting on the first message of a UTC day.
// Failures are logged and retried on the next message; they never block
// the reply.
func (s *ChatService) greetIfNewDay(ctx context.Context, msg domain.Message) {
	if s.birthdays == nil || s.notifier == nil {
		return
	}

	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	day := ts.UTC().Format(time.DateOnly)

	s.mu.Lock()
	done := s.lastDay == day
	s.mu.Unlock()
	if done {
		return
	}

	_, err := s.birthdays.Greet(ctx, ts.UTC(), func(ctx context.Context, text string) error {
		return s.notifier.Send(ctx, msg.ChannelID, text)
	})
	if err != nil {
		logger.Warn("birthday greeting for %s failed: %v", day, err)
		return
	}

	s.mu.Lock()
	s.lastDay = day
	s.mu.Unlock()
}

// allow applies the per-channel limiter.
func (s *ChatService) allow(channelID string, limit domain.RateLimit) bool {
	if !limit.Enabled() {
		return true
	}

	s.mu.Lock()
	limiter, ok := s.limiters[channelID]
	if !ok {
		if len(s.limiters) >= s.sweepSize {
			s.sweepLimiters(time.Now())
		}
		burst := limit.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(limit.RepliesPerMinute)), burst)
		s.limiters[channelID] = limiter
	}
	s.mu.Unlock()

	return limiter.Allow()
}

// sweepLimiters drops limiters that have refilled to their burst. Such a
// limiter behaves exactly like a new one. Callers hold s.mu.
func (s *ChatService) sweepLimiters(now time.Time) {
	before := len(s.limiters)
	for channelID, limiter := range s.limiters {
		if limiter.TokensAt(now) >= float64(limiter.Burst()) {
			delete(s.limiters, channelID)
		}
	}
	logger.Debug("evicted %d idle channel limiters", before-len(s.limiters))
}

// runCommand executes a prefixed command. Unknown commands produce no reply.
func (s *ChatService) runCommand(
	ctx context.Context, msg domain.Message, line string, settings domain.Settings,
) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "about":
		return AboutText, true, nil
	case "birthday":
		return s.birthdayCommand(ctx, msg, fields[1:])
	case "birthdays":
		if !settings.IsOwner(msg.AuthorID) {
			logger.Debug("birthdays from %s: %v", msg.AuthorID, domain.ErrNotOwner)
			return "Only bot owners can list birthdays.", true, nil
		}
		return s.listBirthdays(ctx)
	default:
		logger.Debug("unknown command %q", fields[0])
		return "", false, nil
	}
}

func (s *ChatService) birthdayCommand(ctx context.Context, msg domain.Message, args []string) (string, bool, error) {
	if s.birthdays == nil {
		return "Birthdays are not enabled.", true, nil
	}

	if len(args) == 0 {
		b, err := s.birthdays.Get(ctx, msg.AuthorID)
		if errors.Is(err, domain.ErrNotFound) {
			return "I don't know your birthday yet. Use birthday dd/mm.", true, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("looking up birthday: %w", err)
		}
		return "Your birthday is " + b.String() + ".", true, nil
	}

	if strings.EqualFold(args[0], "forget") {
		err := s.birthdays.Remove(ctx, msg.AuthorID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", false, fmt.Errorf("removing birthday: %w", err)
		}
		return "Forgotten.", true, nil
	}

	b, err := s.birthdays.Set(ctx, msg.AuthorID, args[0])
	if errors.Is(err, domain.ErrInvalidBirthday) {
		return "That doesn't look like a date. Use dd/mm, e.g. 16/11.", true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("saving birthday: %w", err)
	}
	return "Got it, your birthday is " + b.String() + ".", true, nil
}

func (s *ChatService) listBirthdays(ctx context.Context) (string, bool, error) {
	if s.birthdays == nil {
		return "Birthdays are not enabled.", true, nil
	}
	all, err := s.birthdays.List(ctx)
	if err != nil {
		return "", false, fmt.Errorf("listing birthdays: %w", err)
	}
	if len(all) == 0 {
		return "No birthdays recorded.", true, nil
	}

	var b strings.Builder
	for _, bd := range all {
		fmt.Fprintf(&b, "%s <@%s>\n", bd, bd.UserID)
	}
	return b.String(), true, nil
}
