package posix

import (
	"strings"
)

// Export is a single NAME=VALUE assignment extracted from an export
// statement. Value holds the fully decoded value: surrounding quotes are
// stripped and double-quote escape sequences are resolved.
//
// Exports are produced in left-to-right, top-to-bottom discovery order,
// and duplicates are never merged. Order is preserved through emission.
type Export struct {
	Name  string
	Value string
}

// keyword is the statement prefix that marks an export statement.
const keyword = "export"

// Parse scans input for POSIX export statements and returns their
// assignments in discovery order.
//
// Input may span multiple lines, and each line may chain multiple
// statements with the literal separator "&&". Segments that are not export
// statements are ignored. An empty input yields a nil slice.
//
// Note that "&&" splitting happens before quote-aware tokenization, so a
// literal "&&" inside a quoted value still splits the segment.
func Parse(input string) []Export {
	var exports []Export

	for line := range strings.SplitSeq(input, "\n") {
		for segment := range strings.SplitSeq(line, "&&") {
			trimmed := strings.TrimSpace(segment)

			switch {
			case strings.HasPrefix(trimmed, keyword+" "):
				content := strings.TrimSpace(trimmed[len(keyword)+1:])
				exports = append(exports, scanAssignments(content)...)

			case strings.HasPrefix(trimmed, keyword) && len(trimmed) > len(keyword):
				// Keyword without a following space, e.g. "export\tFOO=bar".
				content := strings.TrimSpace(trimmed[len(keyword):])
				exports = append(exports, scanAssignments(content)...)
			}
		}
	}

	return exports
}

// scanAssignments tokenizes the content of one export statement into
// NAME=VALUE assignments.
//
// Tokens are delimited by whitespace outside of quoted regions. A quote
// character opens a region of its kind; the region closes at the next
// occurrence of the same character unless that occurrence is preceded by a
// backslash. The other quote kind is literal content inside a region.
//
// Tokens lacking an "=" are discarded. The token under construction when
// content ends is flushed, so a statement need not end in whitespace.
func scanAssignments(content string) []Export {
	var (
		exports []Export
		token   strings.Builder
		inQuote bool
		quote   rune
	)

	flush := func() {
		raw := token.String()
		token.Reset()

		if raw == "" {
			return
		}

		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return
		}

		exports = append(exports, Export{Name: name, Value: decodeValue(value)})
	}

	for _, ch := range content {
		switch {
		case (ch == '"' || ch == '\'') && !inQuote:
			inQuote = true
			quote = ch

			token.WriteRune(ch)

		case inQuote && ch == quote:
			// An escaped quote is literal content; the region stays open.
			if strings.HasSuffix(token.String(), `\`) {
				token.WriteRune(ch)
			} else {
				inQuote = false

				token.WriteRune(ch)
			}

		case (ch == ' ' || ch == '\t') && !inQuote:
			flush()

		default:
			token.WriteRune(ch)
		}
	}

	flush()

	return exports
}
