// Package nush renders scanned export assignments as Nushell environment
// assignments of the form $env.NAME = VALUE, re-quoting values that contain
// characters unsafe to leave bare.
//
// The emitter never filters or reorders: the number and order of emitted
// lines always equals the number and order of exports it is given.
package nush
