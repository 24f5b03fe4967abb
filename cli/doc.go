// Package cli contains the command line interface for nuposix.
//
// # Usage
//
// The default command converts POSIX export statements read from files or
// stdin and prints the equivalent Nushell assignments:
//
//	nuposix convert < exports.sh
//	nuposix convert --filter 'name == "PATH"' .env
//
// The serve command speaks the Nushell plugin protocol on stdio, which
// registers the pipeline command `from posix` with the engine:
//
//	nuposix serve < /dev/null   # normally driven by the engine, not a user
//
// The repl command opens an interactive preview of the conversion.
//
// # Configuration
//
// Logging and profiling flags are grouped under --log-* and --pprof-*.
// Flag defaults may also be supplied in a YAML configuration file at
// $XDG_CONFIG_HOME/nuposix/config.yaml, keyed by flag name with hyphens
// or underscores:
//
//	log-level: debug
//	log_format: text
//
// Command-line flags override config file values.
package cli
