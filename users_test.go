package vipani

import (
	"errors"
	"testing"
)

func TestAddUser(t *testing.T) {
	b := newTestBook(t)

	nb, u, err := b.AddUser("priya", "s3cret", RoleUser, testNow)
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if u.PasswordHash == "s3cret" {
		t.Errorf("password stored in clear")
	}
	if got := nb.UserByName("priya"); got == nil || got.ID != u.ID {
		t.Errorf("new user not resolvable by name")
	}

	t.Run("duplicate username", func(t *testing.T) {
		if _, _, err := nb.AddUser("priya", "other", RoleAdmin, testNow); !IsValidation(err) {
			t.Errorf("error = %v, want a validation error", err)
		}
	})
	t.Run("missing fields", func(t *testing.T) {
		if _, _, err := b.AddUser("", "pw", RoleUser, testNow); !IsValidation(err) {
			t.Errorf("empty username error = %v, want a validation error", err)
		}
		if _, _, err := b.AddUser("x", "", RoleUser, testNow); !IsValidation(err) {
			t.Errorf("empty password error = %v, want a validation error", err)
		}
	})
}

func TestRemoveUserSafetyLocks(t *testing.T) {
	b := newTestBook(t)

	t.Run("cannot remove self", func(t *testing.T) {
		_, err := b.RemoveUser("admin-1", "admin-1")
		var lock *SafetyLockError
		if !errors.As(err, &lock) {
			t.Errorf("error = %v, want a safety lock", err)
		}
	})
	t.Run("cannot remove last user", func(t *testing.T) {
		nb, err := b.RemoveUser("user-1", "admin-1")
		if err != nil {
			t.Fatalf("RemoveUser: %v", err)
		}
		_, err = nb.RemoveUser("admin-1", "someone-else")
		var lock *SafetyLockError
		if !errors.As(err, &lock) {
			t.Errorf("error = %v, want a safety lock", err)
		}
	})
	t.Run("unknown user", func(t *testing.T) {
		if _, err := b.RemoveUser("ghost", "admin-1"); !IsValidation(err) {
			t.Errorf("error = %v, want a validation error", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	b := newTestBook(t)

	u, err := b.Authenticate("admin", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Errorf("role = %q, want %q", u.Role, RoleAdmin)
	}

	// Wrong password and unknown user fail with the same message.
	_, errWrong := b.Authenticate("admin", "nope")
	_, errGhost := b.Authenticate("ghost", "nope")
	if errWrong == nil || errGhost == nil {
		t.Fatalf("bad credentials accepted")
	}
	if errWrong.Error() != errGhost.Error() {
		t.Errorf("errors differ: %q vs %q, credentials are enumerable", errWrong, errGhost)
	}
}
