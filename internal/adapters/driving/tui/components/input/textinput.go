// Package input provides the chat input line.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/tui/styles"
)

// ChatInput wraps a bubbles textinput for composing messages.
type ChatInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewChatInput creates a focused chat input.
func NewChatInput(s *styles.Styles) *ChatInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Try: I am 171 cm tall"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 60

	return &ChatInput{textinput: ti, styles: s}
}

// Init starts the cursor blinking.
func (c *ChatInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (c *ChatInput) Update(msg tea.Msg) (*ChatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the input inside its border.
func (c *ChatInput) View() string {
	return c.styles.InputField.Render(c.textinput.View())
}

// Value returns the current input value.
func (c *ChatInput) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value.
func (c *ChatInput) SetValue(value string) {
	c.textinput.SetValue(value)
}

// SetWidth fits the input to the terminal width, borders included.
func (c *ChatInput) SetWidth(width int) {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	c.textinput.Width = inner
}

// Reset clears the input.
func (c *ChatInput) Reset() {
	c.textinput.Reset()
}
