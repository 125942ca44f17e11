package common

// AuthorizationHeader carries the bearer token on requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token inside AuthorizationHeader.
const BearerPrefix = "Bearer "

// RequestIDHeader echoes the per-request id assigned by the server.
const RequestIDHeader = "X-Request-ID"

// DegradedHeader is set when a response was served from a fallback.
const DegradedHeader = "X-Degraded"
