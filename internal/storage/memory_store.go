package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/google/uuid"
)

// InMemoryUserStore keeps users in process memory, for development and tests
type InMemoryUserStore struct {
	users map[string]*User
	mu    sync.RWMutex
}

// NewInMemoryUserStore creates an empty in-memory user store
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users: make(map[string]*User),
	}
}

// CreateUser stores a new user and assigns its ID
func (s *InMemoryUserStore) CreateUser(ctx context.Context, user *User) error {
	key := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrDuplicateEmail
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[key] = &stored
	return nil
}

// GetUserByEmail returns a copy of the user registered under email
func (s *InMemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[normalizeEmail(email)]
	if !exists {
		return nil, ErrNotFound
	}
	out := *user
	return &out, nil
}

// UpdatePCSpecs replaces the recorded PC of a user
func (s *InMemoryUserStore) UpdatePCSpecs(ctx context.Context, email string, specs performance.Specs) error {
	return s.update(email, func(u *User) { u.PCSpecs = specs })
}

// UpdatePasswordHash replaces the password hash of a user
func (s *InMemoryUserStore) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	return s.update(email, func(u *User) { u.PasswordHash = hash })
}

// Health always succeeds
func (s *InMemoryUserStore) Health(ctx context.Context) error {
	return nil
}

func (s *InMemoryUserStore) update(email string, fn func(*User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[normalizeEmail(email)]
	if !exists {
		return ErrNotFound
	}
	fn(user)
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
