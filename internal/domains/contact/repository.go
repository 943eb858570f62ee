package contact

import "context"

// Repository owns contact message state. UpdateStatus stores whatever status
// it is handed; enum checking is the handler's job.
type Repository interface {
	ListMessages(ctx context.Context) ([]Message, error)
	CreateMessage(ctx context.Context, msg *Message) error
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
}
