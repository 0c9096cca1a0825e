// Package engine is the boundary between the command-line front-end and the
// component that actually drives connections.
//
// The front-end only knows the Factory signature: it hands over a validated
// config.Configuration and a LogFunc and calls Start. Planner is the Factory
// linked into the binary by default; it reports the effective run plan with
// defaults applied and does not open sockets.
package engine
