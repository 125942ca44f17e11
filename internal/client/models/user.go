// Package models defines the records the CLI exchanges with the server.
package models

// User is the sanitized account returned by the server.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// SignupInput is the body of POST /signup.
type SignupInput struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the body of PATCH /users/me. Nil fields are omitted.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
