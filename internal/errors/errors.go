// Package errors provides the structured error type pathmark surfaces to
// users, carrying a stable code and an optional actionable suggestion on
// top of the wrapped cause.
package errors

import (
	"errors"
	"fmt"
)

// Error codes grouped by concern.
const (
	CodeConfig  = "ERR_CONFIG"
	CodeStorage = "ERR_STORAGE"
	CodeAlias   = "ERR_ALIAS"
	CodePin     = "ERR_PIN"
)

// Error is a structured error with a stable code for logs and an
// optional suggestion shown to the user.
type Error struct {
	Code       string
	Message    string
	Cause      error
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches against other *Error values by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithSuggestion attaches an actionable hint for the user.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an Error around cause. A nil cause yields nil.
func Wrap(code string, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Code: code, Message: cause.Error(), Cause: cause}
}

// FormatForUser renders err for terminal display. Structured errors show
// their message and suggestion; anything else falls back to Error().
func FormatForUser(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		if e.Suggestion != "" {
			return fmt.Sprintf("%s\n   💡 %s", e.Message, e.Suggestion)
		}
		return e.Message
	}
	return err.Error()
}
