package domain

import "time"

// Message is an inbound chat message as seen by the core.
// Transports fill in what they know; only Content is required.
type Message struct {
	// ID uniquely identifies the message within its transport.
	ID string

	// ChannelID identifies where the message was posted.
	ChannelID string

	// AuthorID identifies the sender.
	AuthorID string

	// AuthorName is the sender's display name.
	AuthorName string

	// AuthorIsBot is true for bot accounts, including this one.
	AuthorIsBot bool

	// Content is the raw message body.
	Content string

	// Timestamp is when the message was posted.
	Timestamp time.Time
}

// Reply is a message the bot wants to post in answer to a Message.
type Reply struct {
	// ChannelID is the destination channel.
	ChannelID string

	// InReplyTo is the ID of the message being answered.
	InReplyTo string

	// Content is the reply body.
	Content string
}
