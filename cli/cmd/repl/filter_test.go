package repl

import (
	"testing"

	"github.com/nuposix/nuposix/posix"
)

func sessionNames(entries []sessionMatch) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.export.Name
	}

	return names
}

func TestFilterSession(t *testing.T) {
	session := []posix.Export{
		{Name: "PATH", Value: "/usr/bin"},
		{Name: "HOME", Value: "/home/user"},
		{Name: "GOPATH", Value: "/home/user/go"},
		{Name: "EDITOR", Value: "vi"},
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "empty pattern keeps session order",
			pattern: "",
			want:    []string{"PATH", "HOME", "GOPATH", "EDITOR"},
		},
		{
			name:    "whitespace pattern keeps session order",
			pattern: "   ",
			want:    []string{"PATH", "HOME", "GOPATH", "EDITOR"},
		},
		{
			name:    "exact name ranks first",
			pattern: "PATH",
			want:    []string{"PATH", "GOPATH"},
		},
		{
			name:    "subsequence match",
			pattern: "GP",
			want:    []string{"GOPATH"},
		},
		{
			name:    "no match",
			pattern: "XYZ",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sessionNames(filterSession(session, tt.pattern))

			if len(got) != len(tt.want) {
				t.Fatalf("filterSession(%q) names = %v, want %v",
					tt.pattern, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("filterSession(%q) names = %v, want %v",
						tt.pattern, got, tt.want)

					break
				}
			}
		})
	}
}

func TestFilterSessionHighlights(t *testing.T) {
	session := []posix.Export{{Name: "GOPATH", Value: "/go"}}

	entries := filterSession(session, "GO")
	if len(entries) != 1 {
		t.Fatalf("expected one match, got %d", len(entries))
	}

	if len(entries[0].matched) == 0 {
		t.Error("expected matched indexes for a fuzzy pattern")
	}

	unfiltered := filterSession(session, "")
	if len(unfiltered) != 1 {
		t.Fatalf("expected one entry, got %d", len(unfiltered))
	}

	if unfiltered[0].matched != nil {
		t.Error("expected no matched indexes for an empty pattern")
	}
}

func TestRenderMatchedNameUnstyledContent(t *testing.T) {
	// Styles may degrade to plain text depending on terminal capabilities.
	// The rendered output must always contain the name characters in order.
	entry := sessionMatch{
		export:  posix.Export{Name: "PATH"},
		matched: []int{0, 1},
	}

	out := renderMatchedName(entry)

	idx := 0

	for _, r := range "PATH" {
		found := false

		for ; idx < len(out); idx++ {
			if rune(out[idx]) == r {
				found = true
				idx++

				break
			}
		}

		if !found {
			t.Fatalf("rendered name %q missing character %q", out, r)
		}
	}
}
