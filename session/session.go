// Package session issues and verifies the signed login tokens that back the
// command line session file. A token names the account and its role so
// commands can enforce admin-only surfaces without rereading credentials.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lifetime is how long an issued session stays valid.
const Lifetime = 12 * time.Hour

// Claims is the payload carried by a session token.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ErrNoSession reports that no session file exists: the user is logged out.
var ErrNoSession = errors.New("not logged in")

// Manager issues, persists and verifies sessions. The session file lives
// next to the book so that removing the data directory removes everything.
type Manager struct {
	path   string
	secret []byte
	now    func() time.Time
}

// NewManager returns a manager storing its session at path, signing with
// secret. An empty secret is rejected: unsigned sessions are worthless.
func NewManager(path string, secret []byte) (*Manager, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret must not be empty")
	}
	return &Manager{path: path, secret: secret, now: time.Now}, nil
}

// Open verifies credentials-derived claims and writes the session file.
func (m *Manager) Open(userID, username, role string) error {
	now := m.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("cannot sign session: %w", err)
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("cannot create session directory: %w", err)
		}
	}
	// The token is a credential; keep it private to the user.
	if err := os.WriteFile(m.path, []byte(signed), 0o600); err != nil {
		return fmt.Errorf("cannot write session file: %w", err)
	}
	return nil
}

// Current reads and verifies the session file. It returns ErrNoSession when
// no session file exists, and a verification error for a tampered or
// expired token.
func (m *Manager) Current() (*Claims, error) {
	raw, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read session file: %w", err)
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(string(raw), &claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	return &claims, nil
}

// Close removes the session file. Closing an absent session is not an error.
func (m *Manager) Close() error {
	err := os.Remove(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
