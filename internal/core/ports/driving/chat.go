package driving

import (
	"context"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// ChatHandler processes inbound chat messages for any transport.
type ChatHandler interface {
	// HandleMessage decides whether and how to answer msg.
	// The boolean is false when nothing should be sent.
	HandleMessage(ctx context.Context, msg domain.Message) (domain.Reply, bool, error)
}
