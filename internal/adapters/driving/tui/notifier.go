package tui

import (
	"context"
	"sync"

	"github.com/custodia-labs/unitbot/internal/core/ports/driven"
)

// Ensure NoticeBuffer implements the interface.
var _ driven.Notifier = (*NoticeBuffer)(nil)

// NoticeBuffer collects messages the bot posts on its own so the app can
// show them in the transcript after the current line is handled.
type NoticeBuffer struct {
	mu      sync.Mutex
	pending []string
}

// NewNoticeBuffer creates an empty buffer.
func NewNoticeBuffer() *NoticeBuffer {
	return &NoticeBuffer{}
}

// Send queues text for display. The channel is ignored; the simulator has one.
func (n *NoticeBuffer) Send(_ context.Context, _ string, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, text)
	return nil
}

// Drain returns and clears the queued notices.
func (n *NoticeBuffer) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	return out
}
