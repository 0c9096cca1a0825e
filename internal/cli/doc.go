// Package cli is responsible for turning argv into the raw tokens the
// resolver understands, loading a run profile when one is named, rendering
// the usage text, and carrying process exit codes. It translates CLI flags
// into the application's internal configuration via the config package.
package cli
