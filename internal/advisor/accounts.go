package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/storage"
)

// Register creates an account with no recorded PC
func (s *Service) Register(ctx context.Context, username, email, password string) (*storage.User, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	hash, err := storage.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &storage.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.User, error) {
	user, err := s.user(ctx, email)
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrEmailRequired) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !storage.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser returns a user's profile
func (s *Service) GetUser(ctx context.Context, email string) (*storage.User, error) {
	return s.user(ctx, email)
}

// UpdatePC replaces the recorded PC of a user
func (s *Service) UpdatePC(ctx context.Context, email string, specs performance.Specs) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	err := s.users.UpdatePCSpecs(ctx, email, specs)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// ResetPassword replaces a user's password with a generated temporary one
// and returns it
func (s *Service) ResetPassword(ctx context.Context, email string) (string, error) {
	if _, err := s.user(ctx, email); err != nil {
		return "", err
	}

	password, err := storage.GenerateTemporaryPassword()
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := storage.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, email, hash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	slog.Info("Issued temporary password")
	return password, nil
}
