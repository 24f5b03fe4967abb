// Package posix scans POSIX shell export statements and extracts their
// variable assignments.
//
// The scanner recognizes a narrow, fixed grammar: lines (or "&&"-separated
// line segments) beginning with the export keyword, each carrying one or
// more whitespace-separated NAME=VALUE assignments. Values may be bare,
// single-quoted, or double-quoted with backslash escapes.
//
// Scanning is a best-effort text transform, not a validator. Segments that
// do not parse as export statements contribute nothing to the result, and
// no error is ever reported. The full POSIX grammar (variable expansion,
// command substitution, arithmetic, arrays) is out of scope.
package posix
