// Package apperr carries the error taxonomy shared by the service layer
// and the HTTP layer. Every failing operation returns an *Error with a
// closed Kind; handlers map kinds to status codes without inspecting
// message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	// KindNotFound means a referenced entity is absent or disabled.
	KindNotFound Kind = "not_found"
	// KindConflict means the state already satisfies or forbids the
	// requested transition (duplicate name, already inactive, already admin).
	KindConflict Kind = "conflict"
	// KindInvalid means malformed input.
	KindInvalid Kind = "invalid"
	// KindUnauthorized means the caller lacks the required role.
	KindUnauthorized Kind = "unauthorized"
	// KindInternal wraps an unexpected lower-level failure behind a
	// stable, non-leaking message.
	KindInternal Kind = "internal"
)

// Error is a tagged operation failure.
type Error struct {
	Kind    Kind
	Message string
	// Err is the wrapped cause, if any. It is never shown to callers of
	// the HTTP API.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NotFound creates a not-found error.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Conflict creates a conflict error.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Invalid creates a validation error.
func Invalid(message string) *Error { return New(KindInvalid, message) }

// Unauthorized creates a permission error.
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// Internal wraps an unexpected failure with a stable user-facing message.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not an
// *Error. A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message of err. Unclassified errors
// surface a generic message so internals never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
