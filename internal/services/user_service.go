package services

import (
	"context"
	"errors"
	"strings"

	"github.com/canozdemir/inventory-backend/internal/auth"
	"github.com/canozdemir/inventory-backend/internal/models"
	repo "github.com/canozdemir/inventory-backend/internal/repository"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("username or email already registered")
)

type UserService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewUserService(users repo.Users, tm *auth.TokenManager) *UserService {
	return &UserService{users: users, tm: tm}
}

// Register creates the user and issues a token in one step. The pre-check
// keeps the original "already registered" answer; the unique constraints
// catch the racing write and collapse into the same error.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	taken, err := s.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return models.User{}, "", err
	}
	if taken {
		return models.User{}, "", ErrAlreadyRegistered
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}
	u, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return models.User{}, "", ErrAlreadyRegistered
		}
		return models.User{}, "", err
	}

	token, err := s.tm.Generate(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tm.Generate(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.users.GetByID(ctx, id)
}
