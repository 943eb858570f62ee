package chat

import "context"

// Repository owns chat message state. ListMessages is deliberately
// asymmetric: a session view is a conversation (oldest first), the global
// view is an activity feed (newest first).
type Repository interface {
	ListMessages(ctx context.Context, sessionID string) ([]Message, error)
	CreateMessage(ctx context.Context, msg *Message) error
}
