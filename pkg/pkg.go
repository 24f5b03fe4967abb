//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the nuposix module embedded at build
// time. It is reported to the plugin host during the metadata handshake and
// printed by the CLI in help output.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "nuposix"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Convert POSIX export statements to Nushell $env assignments"
)
