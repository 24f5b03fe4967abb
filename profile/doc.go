// Package profile provides optional runtime profiling for the nuposix
// application.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), every operation is a
// no-op with zero runtime overhead; the --pprof-* CLI flags disappear from
// help output along with it.
//
// With the tag, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace; [Modes] returns the list
// programmatically. Profile files are written to the directory configured
// with [WithPath], which defaults to the user cache directory:
//
//	go build -tags pprof .
//	nuposix --pprof-mode cpu convert < exports.sh
//	go tool pprof ./nuposix "$XDG_CACHE_HOME"/nuposix/pprof/cpu.pprof
package profile
