package service

import (
	"context"
	"time"

	"lawfirm-backend/internal/domains/chat"

	"github.com/google/uuid"
)

type chatServiceImpl struct {
	repository chat.Repository
}

func NewChatService(repo chat.Repository) chat.Service {
	return &chatServiceImpl{
		repository: repo,
	}
}

func (s *chatServiceImpl) ListMessages(ctx context.Context, sessionID string) ([]chat.Message, error) {
	messages, err := s.repository.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	return messages, nil
}

func (s *chatServiceImpl) PostMessage(ctx context.Context, req *chat.CreateMessageRequest) (*chat.ConversationResponse, error) {
	msg := &chat.Message{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Message:   req.Message,
		Sender:    req.Sender,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	if err := s.repository.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	resp := &chat.ConversationResponse{UserMessage: msg}

	// Only visitor messages get an assistant reply; a stored bot message is
	// returned as-is.
	if req.Sender != chat.SenderUser {
		return resp, nil
	}

	bot := &chat.Message{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Message:   chat.Respond(req.Message),
		Sender:    chat.SenderBot,
		CreatedAt: time.Now(),
	}

	if err := s.repository.CreateMessage(ctx, bot); err != nil {
		return nil, err
	}

	resp.BotMessage = bot
	return resp, nil
}
