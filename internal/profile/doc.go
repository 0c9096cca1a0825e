// Package profile loads run profiles: HCL files that hold option values and
// endpoints so a long command line can be kept in a file.
//
// A profile is a flat list of attributes named after the long option names,
// plus an `endpoints` list:
//
//	threads     = 4
//	nagle       = "on"
//	connections = 200
//	websocket   = true
//	endpoints   = ["10.0.0.1:9000", "10.0.0.2:9000"]
//
// Values are turned back into the raw strings a lexer would have produced and
// go through the same validation as the command line. Anything given on the
// command line takes precedence over the profile.
//
// A directory can be given instead of a file; its .hcl files are layered in
// lexical order.
package profile
