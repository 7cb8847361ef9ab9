// Package cli provides the interactive loanvault command-line client.
//
// It wires configuration, the gRPC API client and an interactive REPL. A
// background watcher checks the server health service and flips the prompt
// between online and offline.
//
// Key features:
//   - Signup / Verify / Login / Logout and password reset
//   - Card vault: list, add, edit, set default, delete
//   - Loan profile: show and edit, plus the aggregated account view
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
