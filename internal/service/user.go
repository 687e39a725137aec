package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
)

type UserRepo interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	UpdateUser(ctx context.Context, u entities.User) (entities.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(c auth.Claims) (string, error)
}

type userService struct {
	logger    *slog.Logger
	repo      UserRepo
	passwords PasswordHasher
	tokens    TokenIssuer
}

func NewUserService(logger *slog.Logger, repo UserRepo, passwords PasswordHasher, tokens TokenIssuer) *userService {
	return &userService{
		logger:    logger.With(slog.String("service", "user")),
		repo:      repo,
		passwords: passwords,
		tokens:    tokens,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (entities.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *userService) CountUsers(ctx context.Context) (int, error) {
	return s.repo.CountUsers(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}

// CreateUser stores a new user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, u entities.User, password string) (entities.User, error) {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	u.PasswordHash = hash

	created, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return entities.User{}, err
	}
	s.logger.Debug("user created", slog.String("user_id", created.ID))
	return created, nil
}

// UpdateUser keeps the current password when password is empty.
func (s *userService) UpdateUser(ctx context.Context, u entities.User, password string) (entities.User, error) {
	u.PasswordHash = ""
	if password != "" {
		hash, err := s.passwords.Hash(password)
		if err != nil {
			return entities.User{}, err
		}
		u.PasswordHash = hash
	}
	return s.repo.UpdateUser(ctx, u)
}

// Login returns a session token for valid credentials.
func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	err = s.passwords.Compare(user.PasswordHash, password)
	if errors.Is(err, auth.ErrPasswordMismatch) {
		return "", entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to compare password: %w", err)
	}

	return s.tokens.Issue(auth.Claims{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}
