package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtcdev/invaccess/internal/domain"
	"github.com/dtcdev/invaccess/internal/store"
)

func newAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()
	d := openSeededDB(t)
	return NewAuthService(store.NewUserStore(d), ttl, testLogger())
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	session, err := svc.Login(context.Background(), "admin@company.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin@company.com", session.Email)
	assert.Equal(t, "Admin User", session.DisplayName)
	assert.Equal(t, domain.RoleAdmin, session.Role)
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "admin@company.com", "admin124")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "nobody@company.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLogin_CaseSensitive(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "admin@company.com", "ADMIN123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "Admin@Company.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLogin_MissingFields(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "", "admin123")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Login(context.Background(), "admin@company.com", "")
	assert.True(t, domain.IsValidation(err))
}

func TestAuthServiceSessionRoundTrip(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	session, err := svc.Login(context.Background(), "user@company.com", "user123")
	require.NoError(t, err)

	got, err := svc.SessionFromToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, got.Role)
	assert.Equal(t, "Regular User", got.DisplayName)

	svc.Logout(session.Token)
	_, err = svc.SessionFromToken(session.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceSessionFromToken_Unknown(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.SessionFromToken("bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceSessionExpiry(t *testing.T) {
	svc := newAuthService(t, time.Nanosecond)

	session, err := svc.Login(context.Background(), "user@company.com", "user123")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = svc.SessionFromToken(session.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceTokensAreUnique(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	first, err := svc.Login(context.Background(), "user@company.com", "user123")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "user@company.com", "user123")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}
