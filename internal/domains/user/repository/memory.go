package repository

import (
	"context"
	"sync"

	"lawfirm-backend/internal/domains/user"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

// NewMemoryRepository returns an empty in-process user repository.
func NewMemoryRepository() user.Repository {
	return &memoryRepository{
		users: make(map[string]user.User),
	}
}

func (r *memoryRepository) GetUser(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	result := u
	return &result, nil
}

func (r *memoryRepository) GetUserByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			result := u
			return &result, nil
		}
	}
	return nil, user.ErrUserNotFound
}

// CreateUser enforces username uniqueness under the same lock as the write.
func (r *memoryRepository) CreateUser(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
	}
	r.users[u.ID] = *u
	return nil
}
