// Package transcript renders the scrolling chat history.
package transcript

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/styles"
)

// Speaker identifies who wrote a transcript entry.
type Speaker int

// Transcript speakers.
const (
	SpeakerUser Speaker = iota
	SpeakerBot
	SpeakerNotice
	SpeakerError
)

// Entry is one line group in the transcript.
type Entry struct {
	Speaker Speaker
	Name    string
	Text    string
	At      time.Time
}

// Transcript is a scrollable chat log backed by a bubbles viewport.
type Transcript struct {
	viewport viewport.Model
	styles   *styles.Styles
	entries  []Entry
}

// New creates an empty transcript of the given size.
func New(s *styles.Styles, width, height int) *Transcript {
	if s == nil {
		s = styles.DefaultStyles()
	}
	t := &Transcript{
		viewport: viewport.New(width, height),
		styles:   s,
	}
	t.refresh()
	return t
}

// Append adds an entry and scrolls to it.
func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
	t.refresh()
	t.viewport.GotoBottom()
}

// Entries returns a copy of the transcript entries.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Clear removes every entry.
func (t *Transcript) Clear() {
	t.entries = nil
	t.refresh()
}

// SetSize resizes the viewport.
func (t *Transcript) SetSize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = height
	t.refresh()
}

// Update forwards scrolling keys to the viewport.
func (t *Transcript) Update(msg tea.Msg) (*Transcript, tea.Cmd) {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

// View renders the visible part of the transcript.
func (t *Transcript) View() string {
	return t.styles.Transcript.Render(t.viewport.View())
}

func (t *Transcript) refresh() {
	if len(t.entries) == 0 {
		t.viewport.SetContent(t.styles.Muted.Render("No messages yet. Mention a quantity like 140 pounds."))
		return
	}
	var b strings.Builder
	for _, e := range t.entries {
		b.WriteString(t.render(e))
		b.WriteByte('\n')
	}
	t.viewport.SetContent(b.String())
}

func (t *Transcript) render(e Entry) string {
	stamp := t.styles.Muted.Render(e.At.Format("15:04"))
	text := strings.TrimRight(e.Text, "\n")

	switch e.Speaker {
	case SpeakerBot:
		return stamp + " " + t.styles.BotName.Render(e.Name) + "\n" + t.styles.Normal.Render(text)
	case SpeakerNotice:
		return stamp + " " + t.styles.Notice.Render(text)
	case SpeakerError:
		return stamp + " " + t.styles.Error.Render(text)
	default:
		return stamp + " " + t.styles.UserName.Render(e.Name) + ": " + t.styles.Normal.Render(text)
	}
}
