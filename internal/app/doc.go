// Package app contains the command orchestrator. It owns the run lifecycle
// (parse, validate, then show help, show the version or start the engine),
// maps outcomes to exit codes and always terminates cleanly, decoupled from
// the process entrypoint so it can be driven from tests.
package app
