// Package cli provides the interactive What to Wear command-line client.
//
// It wires configuration, the HTTP API client, the session and item services
// and a read–eval–print loop. Typical flow: restore the saved session if its
// token is still accepted, then execute user commands until "exit".
//
// Key features:
//   - signup / signin / logout, with the token kept in a file between runs
//   - me / update for the current profile
//   - items, add, upload, delete, like, unlike for clothing items
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
