// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates normal termination.
	Success = 0

	// RuntimeError indicates a failure during the session.
	RuntimeError = 1

	// ConfigError indicates a configuration or credential error at startup.
	ConfigError = 2
)
