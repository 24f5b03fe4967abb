// Package plugin implements the Nushell plugin protocol for the "from
// posix" command, using the JSON serializer over stdio.
//
// The package is a thin adapter between the engine's wire protocol and the
// pure conversion core in packages posix and nush: it performs the encoding
// declaration and hello exchange, registers the command signature, coerces
// pipeline input into a single string, and returns the converted text as a
// string value. No conversion logic lives here.
//
// Incoming messages are externally tagged JSON variants and are decoded
// with gjson path lookups; outgoing messages have fixed shapes and are
// encoded from typed structs.
package plugin
