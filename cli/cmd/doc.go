// Package cmd implements the nuposix CLI commands.
//
// Each command is a Kong-bound struct whose Run method receives the
// application context. Commands own their I/O; conversion itself is
// delegated to the pure core in packages posix and nush.
package cmd
