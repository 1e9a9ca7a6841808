package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP boundary. The core never formats
// user-facing pages; it only attaches a kind and a message.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Status maps the error kind to its HTTP status class. Referential-integrity
// conflicts deliberately render as 400, matching the delete guards' contract.
func (e *Error) Status() int {
	switch e.kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusBadRequest
	case KindInternal:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}

func Validation(msg string) *Error {
	return &Error{kind: KindValidation, msg: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{kind: KindUnauthenticated, msg: msg}
}

func Forbidden(msg string) *Error {
	return &Error{kind: KindForbidden, msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{kind: KindNotFound, msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{kind: KindConflict, msg: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{kind: KindInternal, msg: msg, err: err}
}

// StatusOf resolves the HTTP status for any error. Unclassified errors are
// treated as internal failures.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}

	return http.StatusInternalServerError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind == kind
	}

	return false
}
