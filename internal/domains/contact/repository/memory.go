package repository

import (
	"context"
	"sort"
	"sync"

	"lawfirm-backend/internal/domains/contact"
)

type messageRecord struct {
	msg contact.Message
	seq uint64
}

type memoryRepository struct {
	mu       sync.RWMutex
	seq      uint64
	messages map[string]messageRecord
}

// NewMemoryRepository returns an empty in-process contact message repository.
func NewMemoryRepository() contact.Repository {
	return &memoryRepository{
		messages: make(map[string]messageRecord),
	}
}

// ListMessages returns every message, newest first.
func (r *memoryRepository) ListMessages(_ context.Context) ([]contact.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]messageRecord, 0, len(r.messages))
	for _, rec := range r.messages {
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].msg.CreatedAt.Equal(records[j].msg.CreatedAt) {
			return records[i].seq > records[j].seq
		}
		return records[i].msg.CreatedAt.After(records[j].msg.CreatedAt)
	})

	messages := make([]contact.Message, len(records))
	for i, rec := range records {
		messages[i] = rec.msg
	}
	return messages, nil
}

func (r *memoryRepository) CreateMessage(_ context.Context, msg *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.messages[msg.ID] = messageRecord{msg: *msg, seq: r.seq}
	return nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id, status string) (*contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.messages[id]
	if !ok {
		return nil, contact.ErrMessageNotFound
	}

	rec.msg.Status = status
	r.messages[id] = rec

	result := rec.msg
	return &result, nil
}
