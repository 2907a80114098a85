package vipani

import (
	"errors"
	"fmt"
	"strings"
)

// ErrItemNotFound reports a sale against a token item id that does not exist
// in any token. The historical behavior was a silent no-op during the token
// rebuild; it is surfaced here as an explicit error instead.
var ErrItemNotFound = errors.New("token item not found")

// ValidationError reports an operation rejected on its inputs. The book is
// left unchanged and the caller must surface the message to the user.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// RestoreFormatError reports a backup document that cannot replace the
// current book: it is either unparseable or missing required top-level keys.
// The current book is preserved untouched.
type RestoreFormatError struct {
	Missing []string // required keys absent from the document, if any
	cause   error
}

func (e *RestoreFormatError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("invalid backup format: missing required keys %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid backup format: %v", e.cause)
}

func (e *RestoreFormatError) Unwrap() error { return e.cause }

// SafetyLockError reports a user-management operation that is rejected
// unconditionally, regardless of any confirmation: removing the acting
// account, or removing the last remaining account.
type SafetyLockError struct {
	msg string
}

func (e *SafetyLockError) Error() string { return e.msg }

func safetyLockf(format string, args ...any) error {
	return &SafetyLockError{msg: fmt.Sprintf(format, args...)}
}
