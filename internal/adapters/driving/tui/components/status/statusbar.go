// Package status provides the status bar of the chat simulator.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/styles"
)

// State represents what the simulator is doing.
type State string

// Simulator states.
const (
	StateReady   State = "ready"
	StateWaiting State = "waiting"
	StateError   State = "error"
)

// Bar displays the state, reply counters and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	sent    int
	replies int
	width   int
}

// NewBar creates a new status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (b *Bar) renderLeft() string {
	switch b.state {
	case StateWaiting:
		return b.styles.Muted.Render("Thinking...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render("Error: " + b.message)
		}
		return b.styles.Error.Render("Error")
	}
	return b.styles.Muted.Render(fmt.Sprintf("%d sent, %d replies", b.sent, b.replies))
}

func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetError switches to the error state with message.
func (b *Bar) SetError(message string) {
	b.state = StateError
	b.message = message
}

// CountSent records a submitted line.
func (b *Bar) CountSent() {
	b.sent++
}

// CountReply records a bot reply.
func (b *Bar) CountReply() {
	b.replies++
}

// Counts returns the sent and reply counters.
func (b *Bar) Counts() (sent, replies int) {
	return b.sent, b.replies
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets state and counters.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.sent = 0
	b.replies = 0
}
