package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
	"github.com/custodia-labs/unitbot/internal/logger"
)

// MaxMessageLength is the longest message Discord accepts.
const MaxMessageLength = 2000

// session is the part of *discordgo.Session the bot uses.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendReply(
		channelID, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// Ensure Bot implements the interface.
var _ driven.Notifier = (*Bot)(nil)

// Bot is a Discord transport for a chat handler.
type Bot struct {
	session session

	mu   sync.RWMutex
	chat driving.ChatHandler
	ctx  context.Context
	open bool
}

// New creates a bot authenticated with token. The gateway is not
// contacted until Run.
func New(token string) (*Bot, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return newBot(s), nil
}

func newBot(s session) *Bot {
	return &Bot{session: s, ctx: context.Background()}
}

// Run connects to the gateway and dispatches messages to chat until ctx
// is cancelled.
func (b *Bot) Run(ctx context.Context, chat driving.ChatHandler) error {
	if chat == nil {
		return ErrMissingChatHandler
	}

	b.mu.Lock()
	b.chat = chat
	b.ctx = ctx
	b.mu.Unlock()

	remove := b.session.AddHandler(b.onMessageCreate)
	defer remove()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening discord gateway: %w", err)
	}
	b.setOpen(true)
	logger.Info("discord: connected")

	<-ctx.Done()

	b.setOpen(false)
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("closing discord gateway: %w", err)
	}
	logger.Info("discord: disconnected")
	return nil
}

// Send posts text to channelID, split to fit Discord's length limit.
func (b *Bot) Send(_ context.Context, channelID, text string) error {
	if !b.isOpen() {
		return ErrNotConnected
	}
	for _, chunk := range splitMessage(text, MaxMessageLength) {
		if _, err := b.session.ChannelMessageSend(channelID, chunk); err != nil {
			return fmt.Errorf("sending to %s: %w", channelID, err)
		}
	}
	return nil
}

// onMessageCreate is registered with discordgo; s is nil in tests.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil {
		return
	}

	selfID := ""
	if s != nil && s.State != nil && s.State.User != nil {
		selfID = s.State.User.ID
	}

	b.mu.RLock()
	chat, ctx := b.chat, b.ctx
	b.mu.RUnlock()
	if chat == nil {
		return
	}

	b.handle(ctx, chat, toMessage(m.Message, selfID), m.GuildID)
}

func (b *Bot) handle(ctx context.Context, chat driving.ChatHandler, msg domain.Message, guildID string) {
	reply, ok, err := chat.HandleMessage(ctx, msg)
	if err != nil {
		logger.Warn("discord: handling message %s: %v", msg.ID, err)
		return
	}
	if !ok {
		return
	}

	ref := &discordgo.MessageReference{
		MessageID: reply.InReplyTo,
		ChannelID: reply.ChannelID,
		GuildID:   guildID,
	}
	for i, chunk := range splitMessage(reply.Content, MaxMessageLength) {
		if i == 0 {
			_, err = b.session.ChannelMessageSendReply(reply.ChannelID, chunk, ref)
		} else {
			_, err = b.session.ChannelMessageSend(reply.ChannelID, chunk)
		}
		if err != nil {
			logger.Warn("discord: replying in %s: %v", reply.ChannelID, err)
			return
		}
	}
}

func (b *Bot) setOpen(open bool) {
	b.mu.Lock()
	b.open = open
	b.mu.Unlock()
}

func (b *Bot) isOpen() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.open
}

// toMessage maps a gateway message. Our own messages count as bot messages.
func toMessage(m *discordgo.Message, selfID string) domain.Message {
	msg := domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.AuthorName = m.Author.Username
		msg.AuthorIsBot = m.Author.Bot || (selfID != "" && m.Author.ID == selfID)
	}
	return msg
}

// splitMessage breaks text into chunks of at most limit bytes,
// preferring line boundaries and never splitting a rune.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if cur.Len() > 0 {
				chunks = append(chunks, cur.String())
				cur.Reset()
			}
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if cur.Len()+len(line) > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
