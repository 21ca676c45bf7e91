package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) SessionService {
	t.Helper()
	service, err := NewSessionService("admin", "admin-password", "")
	require.NoError(t, err)
	return service
}

func TestNewSessionService(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		tokenOverride string
		expectError   bool
	}{
		{
			name:        "valid credentials",
			username:    "admin",
			password:    "admin-password",
			expectError: false,
		},
		{
			name:        "missing username",
			username:    "",
			password:    "admin-password",
			expectError: true,
		},
		{
			name:        "missing password",
			username:    "admin",
			password:    "",
			expectError: true,
		},
		{
			name:          "explicit token override",
			username:      "admin",
			password:      "admin-password",
			tokenOverride: "fixed-session-token",
			expectError:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewSessionService(tt.username, tt.password, tt.tokenOverride)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, service)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, service)
			if tt.tokenOverride != "" {
				assert.Equal(t, tt.tokenOverride, service.Token())
			}
		})
	}
}

func TestSessionTokenIsDeterministic(t *testing.T) {
	a, err := NewSessionService("admin", "admin-password", "")
	require.NoError(t, err)
	b, err := NewSessionService("admin", "admin-password", "")
	require.NoError(t, err)

	// Two independently configured processes must accept each other's
	// cookies.
	assert.Equal(t, a.Token(), b.Token())
	assert.NoError(t, a.ValidateSession(b.Token()))
}

func TestSessionTokenVariesWithCredentials(t *testing.T) {
	base, err := NewSessionService("admin", "admin-password", "")
	require.NoError(t, err)
	otherUser, err := NewSessionService("other", "admin-password", "")
	require.NoError(t, err)
	otherPass, err := NewSessionService("admin", "other-password", "")
	require.NoError(t, err)

	assert.NotEqual(t, base.Token(), otherUser.Token())
	assert.NotEqual(t, base.Token(), otherPass.Token())
}

func TestSessionTokenShape(t *testing.T) {
	service := createTestSessionService(t)

	// HS256 JWT: three base64url segments.
	parts := strings.Split(service.Token(), ".")
	assert.Len(t, parts, 3)
	for _, p := range parts {
		assert.NotEmpty(t, p)
	}
}

func TestVerifyCredentials(t *testing.T) {
	service := createTestSessionService(t)

	tests := []struct {
		name     string
		username string
		password string
		expected bool
	}{
		{name: "correct pair", username: "admin", password: "admin-password", expected: true},
		{name: "wrong password", username: "admin", password: "nope", expected: false},
		{name: "wrong username", username: "root", password: "admin-password", expected: false},
		{name: "both wrong", username: "root", password: "nope", expected: false},
		{name: "empty pair", username: "", password: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.VerifyCredentials(tt.username, tt.password))
		})
	}
}

func TestValidateSession(t *testing.T) {
	service := createTestSessionService(t)

	t.Run("issued token validates", func(t *testing.T) {
		assert.NoError(t, service.ValidateSession(service.Token()))
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		assert.ErrorIs(t, service.ValidateSession(""), ErrSessionInvalid)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		assert.ErrorIs(t, service.ValidateSession(service.Token()+"x"), ErrSessionInvalid)
	})

	t.Run("token from different credentials is rejected", func(t *testing.T) {
		other, err := NewSessionService("other", "other-password", "")
		require.NoError(t, err)
		assert.ErrorIs(t, service.ValidateSession(other.Token()), ErrSessionInvalid)
	})
}
