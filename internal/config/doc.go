// Package config resolves raw command-line tokens into a validated run
// Configuration.
//
// Resolve is the single entry point. It takes the option map and positional
// list produced by a lexer, applies the per-option parsing and range rules,
// parses the endpoints and checks that a run has somewhere to connect to. It
// stops at the first bad token and reports it as a *CommandLineError; no
// partially filled Configuration ever escapes.
//
// Every scalar option is held in an Optional so consumers can tell "left at
// the default" apart from "explicitly set to the default value".
package config
