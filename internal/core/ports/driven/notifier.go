package driven

import "context"

// Notifier posts unsolicited messages to a chat channel.
type Notifier interface {
	// Send posts text to channelID.
	Send(ctx context.Context, channelID, text string) error
}
