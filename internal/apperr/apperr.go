// Package apperr carries the error kinds the service layer reports and the
// HTTP status each one maps to.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindInternal is the zero value; anything unclassified is a 500.
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidState
	KindAttemptsExceeded
	KindExpired
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func NotFound(msg string) *Error         { return New(KindNotFound, msg) }
func Forbidden(msg string) *Error        { return New(KindForbidden, msg) }
func InvalidState(msg string) *Error     { return New(KindInvalidState, msg) }
func AttemptsExceeded(msg string) *Error { return New(KindAttemptsExceeded, msg) }
func Expired(msg string) *Error          { return New(KindExpired, msg) }

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code the REST surface reports.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidState, KindAttemptsExceeded, KindExpired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
