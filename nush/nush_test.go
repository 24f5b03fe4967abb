package nush

import (
	"strings"
	"testing"

	"github.com/nuposix/nuposix/posix"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "bare value", value: "bar", want: "bar"},
		{name: "empty value", value: "", want: `""`},
		{name: "path stays bare", value: "/usr/bin:/bin", want: "/usr/bin:/bin"},
		{name: "space forces quotes", value: "hello world", want: `"hello world"`},
		{name: "double quote escaped", value: `hello "world"`, want: `"hello \"world\""`},
		{name: "single quote forces quotes", value: "it's", want: `"it's"`},
		{name: "dollar forces quotes", value: "$HOME", want: `"$HOME"`},
		{name: "backslash doubled", value: `a\nb`, want: `"a\\nb"`},
		{name: "backslash before quote", value: `\"`, want: `"\\\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.value); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	exports := []posix.Export{
		{Name: "FOO", Value: "bar"},
		{Name: "PATH", Value: "/usr/bin:/bin"},
		{Name: "MESSAGE", Value: "hello world"},
	}

	want := "$env.FOO = bar\n" +
		"$env.PATH = /usr/bin:/bin\n" +
		"$env.MESSAGE = \"hello world\""

	if got := Render(exports); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty string", got)
	}
}

func TestRenderCustomPrefix(t *testing.T) {
	r := Renderer{Prefix: "$env.config"}

	got := r.Render([]posix.Export{{Name: "DEBUG", Value: "1"}})
	if want := "$env.config.DEBUG = 1"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// One line per export, in order, even for duplicate names.
func TestRenderPreservesCountAndOrder(t *testing.T) {
	exports := []posix.Export{
		{Name: "A", Value: "1"},
		{Name: "B", Value: ""},
		{Name: "A", Value: "2"},
	}

	got := Render(exports)

	lines := strings.Split(got, "\n")
	if len(lines) != len(exports) {
		t.Fatalf("Render() produced %d lines, want %d", len(lines), len(exports))
	}

	wantLines := []string{
		"$env.A = 1",
		`$env.B = ""`,
		"$env.A = 2",
	}

	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single export",
			input: "export FOO=bar",
			want:  "$env.FOO = bar",
		},
		{
			name:  "chained exports",
			input: "export FOO=bar && export BAZ=qux",
			want:  "$env.FOO = bar\n$env.BAZ = qux",
		},
		{
			name:  "multiple assignments one keyword",
			input: "export A=1 B=2",
			want:  "$env.A = 1\n$env.B = 2",
		},
		{
			name:  "quoted value",
			input: `export PATH="/usr/bin:/bin"`,
			want:  "$env.PATH = /usr/bin:/bin",
		},
		{
			name:  "quote round trip",
			input: `export M="hello world"`,
			want:  `$env.M = "hello world"`,
		},
		{
			name:  "escape fidelity",
			input: `export F="hello \"world\""`,
			want:  `$env.F = "hello \"world\""`,
		},
		{
			name:  "single quote literalness",
			input: `export B='a\nb'`,
			want:  `$env.B = "a\\nb"`,
		},
		{
			name:  "multiline",
			input: "export A=1\nexport B=2",
			want:  "$env.A = 1\n$env.B = 2",
		},
		{
			name:  "empty value",
			input: "export E=",
			want:  `$env.E = ""`,
		},
		{
			name:  "non-export lines dropped",
			input: "echo hi\nexport A=1",
			want:  "$env.A = 1",
		},
		{
			name:  "no exports at all",
			input: "echo hi",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.input); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Values free of special characters survive a decode/encode round trip
// unchanged.
func TestRoundTripPlainValues(t *testing.T) {
	for _, v := range []string{"bar", "123", "/usr/bin:/bin", "a=b", "x,y;z"} {
		input := "export V=" + v

		want := "$env.V = " + v
		if got := Convert(input); got != want {
			t.Errorf("Convert(%q) = %q, want %q", input, got, want)
		}
	}
}
