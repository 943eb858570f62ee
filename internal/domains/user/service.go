package user

import "context"

type Service interface {
	// Register creates an account with a bcrypt-hashed password.
	Register(ctx context.Context, req *RegisterRequest) (*User, error)

	// Authenticate checks a username/password pair.
	Authenticate(ctx context.Context, username, password string) (*User, error)
}
