// Package apperr defines the errors the HTTP boundary knows how to render.
// Each carries the status code and the client-visible message; anything else
// reaching the boundary is reported as an internal error.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindUnauthorized
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause. It is logged, never sent to the client.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int { return e.Kind.Status() }

func newError(kind Kind, msg string, defaultMsg string) *Error {
	if msg == "" {
		msg = defaultMsg
	}

	return &Error{Kind: kind, Message: msg}
}

func BadRequest(msg string) *Error {
	return newError(KindBadRequest, msg, "Bad Request")
}

func NotFound(msg string) *Error {
	return newError(KindNotFound, msg, "Not Found")
}

func Unauthorized(msg string) *Error {
	return newError(KindUnauthorized, msg, "Unauthorized")
}

func Internal(msg string) *Error {
	return newError(KindInternal, msg, "Internal Server Error")
}

// Wrap attaches cause to e and returns e.
func (e *Error) Wrap(cause error) *Error {
	e.Err = cause
	return e
}

// From extracts the *Error in err's chain. Errors without one are reported as
// an internal error wrapping err.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return Internal("").Wrap(err)
}
