package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"RepairService/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

type UsersRepo interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	UserByEmail(ctx context.Context, email string) (entities.User, error)
}

type TokenSigner interface {
	Sign(ownerID string) (string, error)
}

type authService struct {
	logger *slog.Logger
	users  UsersRepo
	tokens TokenSigner
}

func NewAuthService(logger *slog.Logger, users UsersRepo, tokens TokenSigner) *authService {
	return &authService{
		logger: logger.With(slog.String("service", "auth")),
		users:  users,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, entities.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
	})
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Debug("user registered", "user_id", user.ID)
	return user, nil
}

// Login возвращает JWT для владельца. Несуществующий email и неверный пароль
// снаружи неразличимы.
func (s *authService) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	user, err := s.users.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, entities.ErrUserNotFound) {
		return "", entities.User{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", entities.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, entities.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return "", entities.User{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}
