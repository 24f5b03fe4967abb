package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nuposix/nuposix/posix"
)

// sessionMatch pairs an export with the fuzzy match over its name, when a
// pattern was applied. matched is nil for unfiltered entries.
type sessionMatch struct {
	export  posix.Export
	matched []int
}

// filterSession returns the session entries whose names fuzzy-match the given
// pattern, ranked best-first. An empty pattern returns every entry in session
// order with no highlights.
func filterSession(session []posix.Export, pattern string) []sessionMatch {
	if strings.TrimSpace(pattern) == "" {
		entries := make([]sessionMatch, len(session))
		for i, export := range session {
			entries[i] = sessionMatch{export: export}
		}

		return entries
	}

	names := make([]string, len(session))
	for i, export := range session {
		names[i] = export.Name
	}

	matches := fuzzy.Find(pattern, names)

	entries := make([]sessionMatch, len(matches))
	for i, match := range matches {
		entries[i] = sessionMatch{
			export:  session[match.Index],
			matched: match.MatchedIndexes,
		}
	}

	return entries
}

// renderMatchedName renders an export name with its fuzzy-matched characters
// highlighted.
func renderMatchedName(entry sessionMatch) string {
	if len(entry.matched) == 0 {
		return inputStyle.Render(entry.export.Name)
	}

	matchSet := make(map[int]bool, len(entry.matched))
	for _, idx := range entry.matched {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range entry.export.Name {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(matchStyle.Render(ch))
		} else {
			b.WriteString(inputStyle.Render(ch))
		}
	}

	return b.String()
}
