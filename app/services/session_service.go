// Package services provides external service integrations and technical concerns like sessions and object storage
package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/pbkdf2"
)

// Session service error constants
var (
	ErrSessionInvalid = errors.New("invalid session token")
)

const (
	sessionKeyIterations = 4096
	sessionKeyLength     = 32
)

// SessionService issues and validates the admin session token. The token is
// derived deterministically from the configured credentials, so every
// process with the same configuration accepts the same cookie and no session
// state is stored anywhere.
type SessionService interface {
	VerifyCredentials(username, password string) bool
	Token() string
	ValidateSession(token string) error
}

// SessionServiceImpl implements SessionService
type SessionServiceImpl struct {
	username string
	password string
	token    string
}

// NewSessionService creates a session service for the configured admin
// credentials. tokenOverride, when non-empty, replaces the derived token
// (ADMIN_SESSION_TOKEN escape hatch).
func NewSessionService(username, password, tokenOverride string) (SessionService, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("admin username and password are required")
	}

	token := tokenOverride
	if token == "" {
		derived, err := deriveSessionToken(username, password)
		if err != nil {
			return nil, fmt.Errorf("failed to derive session token: %w", err)
		}
		token = derived
	}

	return &SessionServiceImpl{
		username: username,
		password: password,
		token:    token,
	}, nil
}

// deriveSessionToken stretches the credentials into a signing key and issues
// an HS256 JWT over fixed claims. No issued-at or expiry claim is set, so
// the result is stable for a given configuration.
func deriveSessionToken(username, password string) (string, error) {
	key := pbkdf2.Key([]byte(password), []byte(username), sessionKeyIterations, sessionKeyLength, sha256.New)

	claims := jwt.MapClaims{
		"iss": "salendar",
		"aud": "admin",
		"sub": username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// VerifyCredentials compares submitted credentials constant-time
func (s *SessionServiceImpl) VerifyCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}

// Token returns the session token issued on successful login
func (s *SessionServiceImpl) Token() string {
	return s.token
}

// ValidateSession checks a cookie value against the expected token
func (s *SessionServiceImpl) ValidateSession(token string) error {
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return ErrSessionInvalid
	}
	return nil
}
