package admin

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest carries the single shared back-office password.
type LoginRequest struct {
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// StatusResponse reports whether the caller holds a live admin session.
type StatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// LoginResponse confirms a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
}
