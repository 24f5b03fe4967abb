package nush

import (
	"strings"

	"github.com/nuposix/nuposix/posix"
)

// DefaultPrefix is the Nushell namespace that receives converted
// assignments.
const DefaultPrefix = "$env"

// unsafe are the characters that force a decoded value to be re-quoted on
// output.
const unsafe = " \"'$\\"

// Renderer emits Nushell assignments under a configurable namespace prefix.
// The zero value renders under [DefaultPrefix].
type Renderer struct {
	Prefix string
}

// Render serializes exports as one assignment line per export, joined by a
// single newline with no trailing newline. Exports are emitted verbatim in
// the order given.
func (r Renderer) Render(exports []posix.Export) string {
	prefix := r.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	lines := make([]string, len(exports))
	for i, export := range exports {
		var sb strings.Builder

		sb.WriteString(prefix)
		sb.WriteByte('.')
		sb.WriteString(export.Name)
		sb.WriteString(" = ")
		sb.WriteString(Quote(export.Value))

		lines[i] = sb.String()
	}

	return strings.Join(lines, "\n")
}

// Quote renders a decoded value in Nushell syntax.
//
// An empty value renders as an empty double-quoted pair. A value containing
// a space, double quote, single quote, dollar sign, or backslash is wrapped
// in double quotes with backslashes doubled before quotes are escaped, so
// the escaping backslashes are not themselves re-doubled. Anything else
// renders bare.
func Quote(value string) string {
	if value == "" {
		return `""`
	}

	if strings.ContainsAny(value, unsafe) {
		escaped := strings.ReplaceAll(value, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)

		return `"` + escaped + `"`
	}

	return value
}

// Render serializes exports under [DefaultPrefix].
func Render(exports []posix.Export) string {
	return Renderer{}.Render(exports)
}

// Convert is the one-shot conversion from POSIX export statements to
// Nushell assignments. It is a pure function over in-memory text: no I/O,
// no shared state, safe to call from any number of goroutines.
func Convert(input string) string {
	return Render(posix.Parse(input))
}
