package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint failure
const uniqueViolation = "23505"

// UserRepository stores users in PostgreSQL
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and assigns its ID
func (r *UserRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash,
		                   pc_cpu, pc_gpu, pc_ram, pc_storage, pc_os)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		id, user.Username, normalizeEmail(user.Email), user.PasswordHash,
		user.PCSpecs.CPU, user.PCSpecs.GPU, user.PCSpecs.RAM, user.PCSpecs.Storage, user.PCSpecs.OS,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	slog.Info("Created user", "id", id)
	return nil
}

// GetUserByEmail returns the user registered under email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash,
		       pc_cpu, pc_gpu, pc_ram, pc_storage, pc_os,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, normalizeEmail(email)).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.PCSpecs.CPU, &u.PCSpecs.GPU, &u.PCSpecs.RAM, &u.PCSpecs.Storage, &u.PCSpecs.OS,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// UpdatePCSpecs replaces the recorded PC of a user
func (r *UserRepository) UpdatePCSpecs(ctx context.Context, email string, specs performance.Specs) error {
	query := `
		UPDATE users
		SET pc_cpu = $2, pc_gpu = $3, pc_ram = $4, pc_storage = $5, pc_os = $6,
		    updated_at = NOW()
		WHERE email = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		normalizeEmail(email), specs.CPU, specs.GPU, specs.RAM, specs.Storage, specs.OS,
	)
	if err != nil {
		return fmt.Errorf("failed to update pc specs: %w", err)
	}
	return expectOneRow(result)
}

// UpdatePasswordHash replaces the password hash of a user
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE email = $1`

	result, err := r.db.ExecContext(ctx, query, normalizeEmail(email), hash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return expectOneRow(result)
}

// Health checks database health
func (r *UserRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
