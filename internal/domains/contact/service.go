package contact

import "context"

type Service interface {
	ListMessages(ctx context.Context) ([]Message, error)
	CreateMessage(ctx context.Context, req *CreateMessageRequest) (*Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
}
