// Package cli provides the interactive jobseekr command-line client.
//
// It wires configuration, the local preferences database, the account API
// client, and the session controller into an interactive REPL. Typical flow:
// start the initial session reconciliation in the background, start a
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Logout against the account API
//   - whoami (server-authoritative session re-sync) and account deletion,
//     both gated on the session state
//   - Language and theme preferences persisted across runs
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartHealthWatcher, and runREPL for details.
package cli
