package chat

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateMessageRequest is the chat-widget payload. The widget generates its
// own session id and sends it with every message.
type CreateMessageRequest struct {
	SessionID string  `json:"sessionId"`
	Message   string  `json:"message"`
	Sender    string  `json:"sender"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SessionID,
			validation.Required.Error("sessionId is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
		),
		validation.Field(&r.Sender,
			validation.Required.Error("sender is required"),
			validation.In(SenderUser, SenderBot).Error("sender must be user or bot"),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil && *r.Email != "",
				is.Email.Error("invalid email format"),
			),
		),
	)
}

// ConversationResponse is returned when a user message triggers the
// assistant. BotMessage is omitted when the stored message came from the bot
// sender itself.
type ConversationResponse struct {
	UserMessage *Message `json:"userMessage"`
	BotMessage  *Message `json:"botMessage,omitempty"`
}
