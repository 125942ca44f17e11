// Package apperr is the closed set of application errors rendered at the
// HTTP edge. Every failure that reaches a client is one of these kinds, and
// the kind alone decides the status code.
package apperr

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/whattowear/internal/common"
)

// Kind enumerates the application error categories.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

var kindStatus = map[Kind]int{
	KindBadRequest:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindInternal:     http.StatusInternalServerError,
}

var kindMessage = map[Kind]string{
	KindBadRequest:   "Bad request",
	KindUnauthorized: "Authorization required",
	KindForbidden:    "Forbidden",
	KindNotFound:     "Requested resource not found",
	KindConflict:     "Conflict",
	KindInternal:     "An error occurred on the server",
}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is an application failure. Message is safe to show to clients;
// Err keeps the internal cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New returns an Error of the given kind. An empty msg falls back to the
// kind's default message.
func New(kind Kind, msg string) *Error {
	if _, ok := kindStatus[kind]; !ok {
		kind = KindInternal
	}
	if msg == "" {
		msg = kindMessage[kind]
	}
	return &Error{Kind: kind, Message: msg}
}

// Wrap is New with an internal cause attached.
func Wrap(kind Kind, msg string, cause error) *Error {
	e := New(kind, msg)
	e.Err = cause
	return e
}

func BadRequest(msg string) *Error   { return New(KindBadRequest, msg) }
func Unauthorized(msg string) *Error { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(KindForbidden, msg) }
func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }

// Internal hides cause behind the default server error message.
func Internal(cause error) *Error { return Wrap(KindInternal, "", cause) }

// Status returns the HTTP status bound to the error's kind.
func (e *Error) Status() int {
	if s, ok := kindStatus[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// From classifies any error into an *Error. Application errors anywhere in
// the chain win; storage sentinels map to their fixed kinds; everything
// else becomes Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	switch {
	case errors.Is(err, common.ErrInvalidID):
		return Wrap(KindBadRequest, "Invalid ID", err)
	case errors.Is(err, common.ErrAlreadyExists):
		return Wrap(KindConflict, "", err)
	case errors.Is(err, common.ErrValidation):
		return Wrap(KindBadRequest, "", err)
	case errors.Is(err, common.ErrNotFound):
		return Wrap(KindNotFound, "", err)
	default:
		return Internal(err)
	}
}
