package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtcdev/invaccess/internal/domain"
)

// userRepository is the subset of store.UserStore that AuthService requires.
type userRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthService checks demo credentials and tracks logged-in sessions in
// memory. Tokens are opaque UUIDs; nothing survives a restart.
type AuthService struct {
	users  userRepository
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewAuthService(users userRepository, ttl time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*domain.Session),
	}
}

// Login verifies the credential pair against the demo accounts. Both
// email and password must match exactly, case included. Any failure,
// unknown email or wrong password alike, comes back as
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" {
		return nil, domain.MissingField("email")
	}
	if password == "" {
		return nil, domain.MissingField("password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:       uuid.NewString(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	s.logger.Info("user logged in", "email", user.Email, "role", user.Role)
	return session, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// SessionFromToken resolves a bearer token to its live session.
// Expired sessions are evicted on lookup.
func (s *AuthService) SessionFromToken(token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if s.ttl > 0 && time.Since(session.CreatedAt) > s.ttl {
		delete(s.sessions, token)
		return nil, domain.ErrInvalidCredentials
	}
	return session, nil
}
