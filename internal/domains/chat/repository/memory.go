package repository

import (
	"context"
	"sync"

	"lawfirm-backend/internal/domains/chat"
)

// Messages are append-only, so a slice in insertion order doubles as the
// chronological index.
type memoryRepository struct {
	mu       sync.RWMutex
	messages []chat.Message
}

// NewMemoryRepository returns an empty in-process chat repository.
func NewMemoryRepository() chat.Repository {
	return &memoryRepository{}
}

// ListMessages returns a session's conversation oldest-first, or every
// message newest-first when sessionID is empty.
func (r *memoryRepository) ListMessages(_ context.Context, sessionID string) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sessionID != "" {
		var messages []chat.Message
		for _, msg := range r.messages {
			if msg.SessionID == sessionID {
				messages = append(messages, msg)
			}
		}
		return messages, nil
	}

	messages := make([]chat.Message, len(r.messages))
	for i, msg := range r.messages {
		messages[len(r.messages)-1-i] = msg
	}
	return messages, nil
}

func (r *memoryRepository) CreateMessage(_ context.Context, msg *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *msg)
	return nil
}
