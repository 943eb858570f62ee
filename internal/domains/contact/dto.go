package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateMessageRequest is the contact-form payload. Status is server-assigned
// and always starts as "new".
type CreateMessageRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Area    string  `json:"area"`
	Message string  `json:"message"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone,
			validation.When(r.Phone != nil && *r.Phone != "",
				validation.Length(5, 30).Error("invalid phone number"),
			),
		),
		validation.Field(&r.Area,
			validation.Required.Error("area is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
		),
	)
}

// UpdateStatusRequest moves a message through the back-office workflow. The
// enum is enforced here, at the boundary, not by the repository.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusNew, StatusRead, StatusReplied).Error("status must be one of: new, read, replied"),
		),
	)
}
