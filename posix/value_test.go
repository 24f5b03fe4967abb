package posix

import (
	"testing"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "bare", token: "bar", want: "bar"},
		{name: "bare trimmed", token: "  bar\t", want: "bar"},
		{name: "double quoted", token: `"hello world"`, want: "hello world"},
		{name: "single quoted", token: `'hello world'`, want: "hello world"},
		{name: "empty double quotes", token: `""`, want: ""},
		{name: "empty single quotes", token: `''`, want: ""},
		{name: "escaped quote", token: `"say \"hi\""`, want: `say "hi"`},
		{name: "escaped backslash", token: `"a\\b"`, want: `a\b`},
		{name: "newline escape", token: `"a\nb"`, want: "a\nb"},
		{name: "tab escape", token: `"a\tb"`, want: "a\tb"},
		{name: "carriage return escape", token: `"a\rb"`, want: "a\rb"},
		{name: "single quotes literal backslash", token: `'a\nb'`, want: `a\nb`},
		{name: "lone double quote", token: `"`, want: `"`},
		{name: "lone single quote", token: `'`, want: `'`},
		{name: "mismatched quotes", token: `"abc'`, want: `"abc'`},
		{name: "unknown escape preserved", token: `"a\xb"`, want: `a\xb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeValue(tt.token); got != tt.want {
				t.Errorf("decodeValue(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

// The decoder must not rescan substituted output: the sequence backslash,
// backslash, n decodes to backslash then the letter n, never to a newline.
func TestDecodeEscapesSinglePass(t *testing.T) {
	if got, want := decodeEscapes(`a\\nb`), `a\nb`; got != want {
		t.Errorf("decodeEscapes(%q) = %q, want %q", `a\\nb`, got, want)
	}

	if got, want := decodeEscapes(`\\\\`), `\\`; got != want {
		t.Errorf("decodeEscapes(%q) = %q, want %q", `\\\\`, got, want)
	}
}

func TestDecodeEscapesTrailingBackslash(t *testing.T) {
	if got, want := decodeEscapes(`abc\`), `abc\`; got != want {
		t.Errorf("decodeEscapes(%q) = %q, want %q", `abc\`, got, want)
	}
}
