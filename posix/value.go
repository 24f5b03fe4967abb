package posix

import (
	"strings"
)

// decodeValue interprets the raw value token of an assignment.
//
// A token wrapped in a single pair of double quotes spanning its entire
// trimmed length is unquoted and escape-decoded. A token wrapped in single
// quotes is unquoted with every inner character taken literally, backslashes
// included. Any other token is used verbatim after trimming.
func decodeValue(token string) string {
	trimmed := strings.TrimSpace(token)

	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]

		switch {
		case first == '"' && last == '"':
			return decodeEscapes(trimmed[1 : len(trimmed)-1])

		case first == '\'' && last == '\'':
			return trimmed[1 : len(trimmed)-1]
		}
	}

	return trimmed
}

// decodeEscapes resolves double-quote escape sequences in a single
// left-to-right pass. Each substitution applies once per character
// position; substituted output is never rescanned, so a sequence like
// `\\n` decodes to a backslash followed by the letter n, not a newline.
//
// Recognized sequences are \", \\, \n, \t, and \r. Any other
// backslash-led pair is preserved as-is.
func decodeEscapes(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"':
				b.WriteByte('"')
				i++

				continue
			case '\\':
				b.WriteByte('\\')
				i++

				continue
			case 'n':
				b.WriteByte('\n')
				i++

				continue
			case 't':
				b.WriteByte('\t')
				i++

				continue
			case 'r':
				b.WriteByte('\r')
				i++

				continue
			}
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
