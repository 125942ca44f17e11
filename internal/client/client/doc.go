// Package client talks to the What to Wear HTTP API.
//
// # Overview
//
// Client is the transport-agnostic contract the CLI services depend on.
// HTTPClient implements it over net/http and JSON. It keeps the bearer token
// issued by Signin and attaches it to every protected call.
//
// # Error Handling
//
// Non-2xx answers come back as *APIError carrying the status and the
// server's {"message"} text. Transport failures wrap ErrUnavailable, and a
// 401 answer matches ErrUnauthorized with errors.Is.
package client
