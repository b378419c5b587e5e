// Package cli provides the interactive payment ledger REPL.
//
// A user picks their name from the provisioned users, enters password and
// PIN, and then works on their own payments: list them over a date range,
// add new ones, delete rows of the last listing, and export a report of
// selected rows. The REPL is started via App.Run(ctx), which blocks until
// the user exits or input ends.
package cli
