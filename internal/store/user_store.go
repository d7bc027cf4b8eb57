package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtcdev/invaccess/internal/domain"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// GetByEmail looks up an account by exact, case-sensitive email.
// Returns (nil, nil) when no account matches.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password, display_name, role FROM users WHERE email = ?
	`, email).Scan(&user.ID, &user.Email, &user.Password, &user.DisplayName, &user.Role)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, password, display_name, role) VALUES (?, ?, ?, ?)
	`, user.Email, user.Password, user.DisplayName, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}
