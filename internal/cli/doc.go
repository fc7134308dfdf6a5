// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags and DUNGEON_* environment variables into the host's
// configuration and separates them from the arguments owned by the module.
package cli
