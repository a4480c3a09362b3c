// Package cli provides the interactive Sport Together command-line client.
//
// It wires configuration, the local session cache, the API client and the
// page controllers into a REPL. The current page is kept as an HTML document
// that is written to the configured output file after every command.
//
// Key features:
//   - Register / Login / Logout
//   - My games, local games at the user's university
//   - Create, edit and join games
//   - Background connectivity watcher (online/offline status in the prompt)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
