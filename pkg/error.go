package pkg

// Sentinel errors for the nuposix module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.
//
// Note that the conversion core itself (packages posix and nush) has no
// error path at all: text that does not parse as an export statement is
// silently excluded from the result. The sentinels below cover the only
// failure surfaces the module owns, which are all at the host boundary.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrInvalidInput is returned when the plugin host supplies pipeline input
// that is neither a string nor a list/stream of strings.
//
// This is the only user-visible failure the converter produces. It should
// be wrapped with a description of the offending input type.
var ErrInvalidInput = MakeErrorf("Input must be a string")

// ErrReadInput is returned when reading input from a file or stdin fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrDecodeMessage is returned when an incoming plugin-protocol message
// cannot be decoded.
//
// This error should be wrapped with the raw message content so the
// malformed exchange can be diagnosed from the logs.
var ErrDecodeMessage = MakeErrorf("failed to decode plugin message")

// ErrEncodeMessage is returned when an outgoing plugin-protocol message
// cannot be encoded or written to the host.
var ErrEncodeMessage = MakeErrorf("failed to encode plugin message")

// ErrProtocolVersion is returned when the engine's hello message declares a
// protocol identity this plugin cannot serve.
var ErrProtocolVersion = MakeErrorf("incompatible plugin protocol")

// ErrFilterCompile is returned when a --filter expression fails to compile.
//
// This error should be wrapped with the underlying compile error and the
// expression source.
var ErrFilterCompile = MakeErrorf("failed to compile filter expression")

// ErrFilterEval is returned when a compiled --filter expression fails to
// evaluate against an export record.
var ErrFilterEval = MakeErrorf("failed to evaluate filter expression")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
