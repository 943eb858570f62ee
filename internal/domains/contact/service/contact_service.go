package service

import (
	"context"
	"time"

	"lawfirm-backend/internal/domains/contact"

	"github.com/google/uuid"
)

type contactServiceImpl struct {
	repository contact.Repository
}

func NewContactService(repo contact.Repository) contact.Service {
	return &contactServiceImpl{
		repository: repo,
	}
}

func (s *contactServiceImpl) ListMessages(ctx context.Context) ([]contact.Message, error) {
	messages, err := s.repository.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []contact.Message{}
	}
	return messages, nil
}

func (s *contactServiceImpl) CreateMessage(ctx context.Context, req *contact.CreateMessageRequest) (*contact.Message, error) {
	msg := &contact.Message{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Area:      req.Area,
		Message:   req.Message,
		Status:    contact.StatusNew,
		CreatedAt: time.Now(),
	}

	if err := s.repository.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*contact.Message, error) {
	return s.repository.UpdateStatus(ctx, id, status)
}
