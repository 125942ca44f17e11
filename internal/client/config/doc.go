// Package config loads runtime configuration for the What to Wear CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string       base URL of the API server
//	-i int          request timeout (seconds)
//	-token string   file holding the bearer token between runs
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:3001",
//	  "request_timeout": "10s",
//	  "token_file": ".wtwr_token"
//	}
package config
