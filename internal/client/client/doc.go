// Package client is the Go client of the loanvault Accounts gRPC API.
//
// # Overview
//
// GRPCClient manages a connection, encodes messages with the server's JSON
// codec, injects the access token through an interceptor and transparently
// refreshes it once when the server reports it as expired.
//
// # Error Handling
//
// gRPC statuses are mapped to sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrInvalidInput, ErrNotFound,
// ErrConflict. The server message is kept in the error text.
//
// Concurrency & Contexts
//
// A GRPCClient holds the current token pair and is not safe for concurrent
// logins. All operations accept context.Context and honor cancellation.
package client
