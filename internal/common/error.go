// Package common defines sentinel errors and constants shared by the
// storage adapters, services and the HTTP edge. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors. Storage adapters translate driver failures
	// into these and nothing else.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidID     = errors.New("invalid id")
	ErrValidation    = errors.New("validation error")
	ErrUnavailable   = errors.New("storage unavailable")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
