// Package cli provides the interactive MovieKeeper shell.
//
// It wires configuration, the local account store, the OMDb catalog client
// and a REPL. On start the persisted session, if any, is restored, so a user
// who did not log out stays logged in.
//
// Key features:
//   - Register / Login / Logout / WhoAmI
//   - Search by title, by year, popular picks, movie details
//   - Favorites: add, remove, list
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
