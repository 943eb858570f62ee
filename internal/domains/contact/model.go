package contact

import "time"

// Message statuses. Transitions happen only by explicit back-office action.
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// Statuses lists the accepted status values in order.
var Statuses = []string{StatusNew, StatusRead, StatusReplied}

// Message is an inbound contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Area      string    `json:"area"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
