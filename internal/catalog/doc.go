// Package catalog is the fixed table of command-line options understood by
// tcplika.
//
// The table maps every accepted option name (short and long form, without
// the leading dashes) to a Kind. It is built once at package initialisation
// and never modified, so lookups are safe from any goroutine. Tokens that are
// not in the table resolve to Unrecognized; deciding what to do about them is
// the caller's job.
package catalog
