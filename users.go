package vipani

import (
	"errors"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole controls access to administrative functions.
type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

// UserAccount is a login account. Credentials are stored as bcrypt hashes,
// a deliberate hardening over the historical plaintext comparison.
type UserAccount struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"passwordHash"`
	Role         UserRole `json:"role"`
	CreatedAt    Datetime `json:"createdAt"`
}

// HashPassword derives the stored form of a password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// AddUser registers a new login account and returns the new book and the
// created account.
func (b *Book) AddUser(username, password string, role UserRole, now time.Time) (*Book, UserAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, UserAccount{}, validationf("both a username and a password are required")
	}
	if b.UserByName(username) != nil {
		return nil, UserAccount{}, validationf("username %q is already taken", username)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, UserAccount{}, err
	}
	u := UserAccount{
		ID:           NewID(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    NewDatetime(now),
	}
	nb := *b
	nb.Users = append(slices.Clone(b.Users), u)
	return &nb, u, nil
}

// RemoveUser deletes a login account. Two safety locks are enforced
// unconditionally, regardless of any confirmation: the acting account cannot
// remove itself, and the last remaining account cannot be removed.
func (b *Book) RemoveUser(id, actingUserID string) (*Book, error) {
	if id == actingUserID {
		return nil, safetyLockf("you cannot remove your own active account")
	}
	if len(b.Users) <= 1 {
		return nil, safetyLockf("the last remaining account cannot be removed")
	}
	if b.User(id) == nil {
		return nil, validationf("user %q is not registered", id)
	}
	nb := *b
	nb.Users = slices.DeleteFunc(slices.Clone(b.Users), func(u UserAccount) bool { return u.ID == id })
	return &nb, nil
}

// Authenticate verifies a username/password pair against the book and
// returns the matching account. The error does not distinguish unknown
// users from wrong passwords.
func (b *Book) Authenticate(username, password string) (*UserAccount, error) {
	u := b.UserByName(username)
	if u == nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return u, nil
}
