package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/components/transcript"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// Identity of the simulated conversation.
const (
	LocalChannelID = "local"
	BotName        = "unitbot"
)

// App is the chat simulator following the Elm architecture.
type App struct {
	ports   *Ports
	notices *NoticeBuffer
	ctx     context.Context

	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.ChatInput
	transcript *transcript.Transcript
	status     *status.Bar

	userID   string
	userName string
	now      func() time.Time
	newID    func() string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat simulator with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		input:      input.NewChatInput(s),
		transcript: transcript.New(s, 80, 20),
		status:     status.NewBar(s, km),
		userID:     "local-user",
		userName:   "you",
		now:        time.Now,
		newID:      uuid.NewString,
	}, nil
}

// WithContext sets the context passed to the chat handler.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithNotices shows messages queued in buf after each handled line.
// buf should be the notifier given to the chat handler.
func (a *App) WithNotices(buf *NoticeBuffer) *App {
	a.notices = buf
	return a
}

// WithUser sets the identity the local user chats as.
func (a *App) WithUser(id, name string) *App {
	if id != "" {
		a.userID = id
	}
	if name != "" {
		a.userName = name
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("unitbot - chat simulator"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Clear):
			a.transcript.Clear()
			a.status.Clear()
			return a, nil
		case key.Matches(msg, a.keymap.ScrollUp), key.Matches(msg, a.keymap.ScrollDown):
			a.transcript, cmd = a.transcript.Update(msg)
			return a, cmd
		case key.Matches(msg, a.keymap.Send):
			return a, a.submit()
		}
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case messages.LineSubmitted:
		return a, a.handle(msg.Message)

	case messages.ReplyReceived:
		a.receive(msg)
		return a, nil
	}

	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit turns the input line into a message and hands it to the chat handler.
func (a *App) submit() tea.Cmd {
	line := strings.TrimSpace(a.input.Value())
	if line == "" {
		return nil
	}
	a.input.Reset()

	m := domain.Message{
		ID:         a.newID(),
		ChannelID:  LocalChannelID,
		AuthorID:   a.userID,
		AuthorName: a.userName,
		Content:    line,
		Timestamp:  a.now(),
	}
	a.transcript.Append(transcript.Entry{
		Speaker: transcript.SpeakerUser,
		Name:    a.userName,
		Text:    line,
		At:      m.Timestamp,
	})
	a.status.CountSent()
	a.status.SetState(status.StateWaiting)

	return func() tea.Msg {
		return messages.LineSubmitted{Message: m}
	}
}

// handle runs the chat handler off the update loop.
func (a *App) handle(m domain.Message) tea.Cmd {
	return func() tea.Msg {
		reply, ok, err := a.ports.Chat.HandleMessage(a.ctx, m)
		var notices []string
		if a.notices != nil {
			notices = a.notices.Drain()
		}
		return messages.ReplyReceived{Reply: reply, OK: ok, Notices: notices, Err: err}
	}
}

func (a *App) receive(msg messages.ReplyReceived) {
	at := a.now()
	for _, n := range msg.Notices {
		a.transcript.Append(transcript.Entry{Speaker: transcript.SpeakerNotice, Text: n, At: at})
	}

	if msg.Err != nil {
		a.transcript.Append(transcript.Entry{Speaker: transcript.SpeakerError, Text: msg.Err.Error(), At: at})
		a.status.SetError(msg.Err.Error())
		return
	}

	a.status.SetState(status.StateReady)
	if msg.OK {
		a.transcript.Append(transcript.Entry{
			Speaker: transcript.SpeakerBot,
			Name:    BotName,
			Text:    msg.Reply.Content,
			At:      at,
		})
		a.status.CountReply()
	}
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// header 1, input 3, status 1, transcript border 2
	body := height - 7
	if body < 3 {
		body = 3
	}
	a.transcript.SetSize(width-2, body)
	a.input.SetWidth(width)
	a.status.SetWidth(width)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	header := a.styles.Title.Render("unitbot") + " " + a.styles.Muted.Render("chat simulator")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.transcript.View(),
		a.input.View(),
		a.status.View(),
	)
}

// Transcript returns the entries shown so far.
func (a *App) Transcript() []transcript.Entry {
	return a.transcript.Entries()
}
