package service

import (
	"context"
	"testing"

	"lawfirm-backend/internal/domains/user"
	"lawfirm-backend/internal/domains/user/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryRepository())

	created, err := svc.Register(ctx, &user.RegisterRequest{
		Username: "admin",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "s3cret-pass", created.Password, "password must be stored hashed")

	got, err := svc.Authenticate(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryRepository())

	_, err := svc.Register(ctx, &user.RegisterRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := NewUserService(repository.NewMemoryRepository())

	_, err := svc.Authenticate(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryRepository())

	_, err := svc.Register(ctx, &user.RegisterRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &user.RegisterRequest{Username: "admin", Password: "another-pass"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}
