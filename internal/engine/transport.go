package engine

import "context"

// MessageRef identifies the chat message that displays a grid.
type MessageRef struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int   `json:"message_id"`
}

// Query is one button tap as delivered by the chat platform.
type Query struct {
	ID      string
	Message MessageRef
}

// Transport defines the chat-platform side effects the engine needs.
// Implementations must serialize calls for the same message; the engine
// holds no state of its own to do so.
type Transport interface {
	// EditReplyMarkup replaces the grid of msg in place.
	EditReplyMarkup(ctx context.Context, msg MessageRef, markup Markup) error

	// DeleteReplyMarkup strips the grid from msg.
	DeleteReplyMarkup(ctx context.Context, msg MessageRef) error

	// AnswerCallback stops the client's loading indicator for queryID.
	AnswerCallback(ctx context.Context, queryID string, cacheSeconds int) error
}
