// Package cli provides the interactive trainerhub command-line client.
//
// The App restores any stored session once at start, then runs a REPL whose
// command set follows the session: sign-in commands while unauthenticated,
// the trainer commands for PERSONAL users and the student commands for
// STUDENT users. A rejected token logs the user out and drops the REPL back
// to the sign-in commands.
package cli
