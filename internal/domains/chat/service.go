package chat

import "context"

type Service interface {
	// ListMessages returns one session's conversation in chronological order,
	// or every message newest-first when sessionID is empty.
	ListMessages(ctx context.Context, sessionID string) ([]Message, error)

	// PostMessage stores the message and, for user messages, stores and
	// returns the assistant's reply as well.
	PostMessage(ctx context.Context, req *CreateMessageRequest) (*ConversationResponse, error)
}
