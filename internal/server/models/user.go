// Package models holds the domain records exchanged between storage,
// services and the HTTP layer.
package models

import "time"

// User is an account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// UserUpdate carries the fields PATCH /users/me may change. Nil means keep.
type UserUpdate struct {
	Name   *string
	Avatar *string
}
