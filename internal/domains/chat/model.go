package chat

import "time"

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one line of a chat-widget conversation. Messages are
// append-only; there is no update or delete.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
