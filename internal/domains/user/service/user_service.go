package service

import (
	"context"

	"lawfirm-backend/internal/domains/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	repository user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userServiceImpl{
		repository: repo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Password: string(hash),
	}

	if err := s.repository.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userServiceImpl) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := s.repository.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	return u, nil
}
