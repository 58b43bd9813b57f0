// Package cli provides the interactive PrivaChat command-line client.
//
// It wires configuration, local storage, API services, and an interactive REPL
// that supports online/offline operation. Typical flow: login, open a
// conversation, exchange messages while a background goroutine renders events
// pushed by the relay (new messages, typing, reactions, presence).
//
// Key features:
//   - Register / Login / Logout (online with offline fallback)
//   - Contact discovery and friend requests
//   - End-to-end encrypted messages with replies and reactions
//   - History export
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
