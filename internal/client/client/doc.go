// Package client contains the client-side building blocks for talking to
// the chat server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     accounts, the contact graph, message history, reactions, exports and
//     the live event stream.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens once, and maps gRPC status codes to sentinel
//     errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Conditions callers branch on are exposed as sentinel errors that can be
// matched with errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden,
// ErrNotFound, ErrConflict, ErrInvalidArgument, ErrLocalDataNotAvailable.
// The server's message is kept in the wrapped error text.
//
// # Concurrency
//
// GRPCClient is safe for concurrent use: the token pair is guarded by a
// mutex, and an EventStream may be read in one goroutine while unary calls
// run in others. An EventStream serialises its own sends.
package client
