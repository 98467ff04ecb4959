package discord

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/services"
)

type sentMessage struct {
	channelID string
	content   string
	reference *discordgo.MessageReference
}

// fakeSession records calls instead of talking to the gateway.
type fakeSession struct {
	mu       sync.Mutex
	handlers []interface{}
	opened   bool
	closed   bool
	openErr  error
	sendErr  error
	sent     []sentMessage
}

func (f *fakeSession) AddHandler(handler interface{}) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
	return func() {}
}

func (f *fakeSession) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = true
	return f.openErr
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSession) ChannelMessageSend(
	channelID, content string, _ ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	return f.record(channelID, content, nil)
}

func (f *fakeSession) ChannelMessageSendReply(
	channelID, content string, ref *discordgo.MessageReference, _ ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	return f.record(channelID, content, ref)
}

func (f *fakeSession) record(channelID, content string, ref *discordgo.MessageReference) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, content: content, reference: ref})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func newChat() *services.ChatService {
	return services.NewChatService(services.NewResponder(), nil, nil, domain.DefaultSettings())
}

func gatewayMessage(content string, author *discordgo.User) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   content,
		Author:    author,
		Timestamp: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
	}}
}

func TestNew(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, domain.ErrMissingToken)

	bot, err := New("token")
	require.NoError(t, err)
	s, ok := bot.session.(*discordgo.Session)
	require.True(t, ok)
	assert.Equal(t, "Bot token", s.Token)
	assert.NotZero(t, s.Identify.Intents&discordgo.IntentMessageContent)
}

func TestToMessage(t *testing.T) {
	m := gatewayMessage("5 km", &discordgo.User{ID: "u1", Username: "maddy"}).Message

	msg := toMessage(m, "self")
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "c1", msg.ChannelID)
	assert.Equal(t, "u1", msg.AuthorID)
	assert.Equal(t, "maddy", msg.AuthorName)
	assert.False(t, msg.AuthorIsBot)
	assert.Equal(t, "5 km", msg.Content)

	m.Author.Bot = true
	assert.True(t, toMessage(m, "self").AuthorIsBot)

	m.Author = &discordgo.User{ID: "self"}
	assert.True(t, toMessage(m, "self").AuthorIsBot, "own messages count as bot messages")

	m.Author = nil
	assert.Empty(t, toMessage(m, "self").AuthorID)
}

func TestBot_RepliesWithReference(t *testing.T) {
	fake := &fakeSession{}
	bot := newBot(fake)
	bot.chat = newChat()

	bot.onMessageCreate(nil, gatewayMessage("Hello, I am 171 cm tall", &discordgo.User{ID: "u1"}))

	sent := fake.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "c1", sent[0].channelID)
	assert.Equal(t, "171 cm is 67.32 inches\n", sent[0].content)
	require.NotNil(t, sent[0].reference)
	assert.Equal(t, "m1", sent[0].reference.MessageID)
	assert.Equal(t, "g1", sent[0].reference.GuildID)
}

func TestBot_IgnoresBotsAndPlainText(t *testing.T) {
	fake := &fakeSession{}
	bot := newBot(fake)
	bot.chat = newChat()

	bot.onMessageCreate(nil, gatewayMessage("140 pounds", &discordgo.User{ID: "b", Bot: true}))
	bot.onMessageCreate(nil, gatewayMessage("no units here", &discordgo.User{ID: "u1"}))
	bot.onMessageCreate(nil, nil)

	assert.Empty(t, fake.messages())
}

func TestBot_NoHandlerBeforeRun(t *testing.T) {
	fake := &fakeSession{}
	bot := newBot(fake)

	bot.onMessageCreate(nil, gatewayMessage("140 pounds", &discordgo.User{ID: "u1"}))

	assert.Empty(t, fake.messages())
}

func TestBot_Run(t *testing.T) {
	fake := &fakeSession{}
	bot := newBot(fake)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- bot.Run(ctx, newChat()) }()

	require.Eventually(t, bot.isOpen, time.Second, 5*time.Millisecond)
	require.NoError(t, bot.Send(context.Background(), "c1", "Happy birthday <@u1>! 🎂"))

	cancel()
	require.NoError(t, <-done)

	assert.True(t, fake.opened)
	assert.True(t, fake.closed)
	assert.Len(t, fake.handlers, 1)
	assert.Len(t, fake.messages(), 1)
	assert.ErrorIs(t, bot.Send(context.Background(), "c1", "late"), ErrNotConnected)
}

func TestBot_RunErrors(t *testing.T) {
	bot := newBot(&fakeSession{})
	assert.ErrorIs(t, bot.Run(context.Background(), nil), ErrMissingChatHandler)

	failing := newBot(&fakeSession{openErr: errors.New("401 unauthorized")})
	err := failing.Run(context.Background(), newChat())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401 unauthorized")
}

func TestBot_SendError(t *testing.T) {
	fake := &fakeSession{sendErr: errors.New("missing access")}
	bot := newBot(fake)
	bot.setOpen(true)

	err := bot.Send(context.Background(), "c1", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing access")
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 10))
	assert.Equal(t, []string{""}, splitMessage("", 10))

	lines := "aaaa\nbbbb\ncccc\n"
	assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc\n"}, splitMessage(lines, 10))

	long := strings.Repeat("x", 25)
	assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, splitMessage(long, 10))

	// ℃ is three bytes; a chunk never ends inside it.
	for _, chunk := range splitMessage(strings.Repeat("℃", 10), 10) {
		assert.True(t, utf8.ValidString(chunk))
		assert.LessOrEqual(t, len(chunk), 10)
	}
}
