package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveValue(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	val, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return val
}

func TestResolveFlagValues(t *testing.T) {
	cfg := `
log-level: debug
log_format: text
log-pretty: true
`

	resolver, err := resolve(strings.NewReader(cfg))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveValue(t, resolver, "log-level"); val != "debug" {
		t.Errorf("expected log-level=debug, got %v", val)
	}

	if val := resolveValue(t, resolver, "log-pretty"); val != true {
		t.Errorf("expected log-pretty=true, got %v", val)
	}
}

func TestResolveUnderscoreHyphenMapping(t *testing.T) {
	cfg := `log_format: text`

	resolver, err := resolve(strings.NewReader(cfg))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// The hyphenated flag name falls back to the underscore key.
	if val := resolveValue(t, resolver, "log-format"); val != "text" {
		t.Errorf("expected log-format=text, got %v", val)
	}
}

func TestResolveMissingFlag(t *testing.T) {
	resolver, err := resolve(strings.NewReader(`log-level: info`))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if val := resolveValue(t, resolver, "prefix"); val != nil {
		t.Errorf("expected nil for missing flag, got %v", val)
	}
}

func TestResolveNumbersAsStrings(t *testing.T) {
	cfg := `
count: 42
ratio: 1.5
`

	resolver, err := resolve(strings.NewReader(cfg))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	val := resolveValue(t, resolver, "count")
	if s, ok := val.(string); !ok || s != "42" {
		t.Errorf("expected count as string \"42\", got %T %v", val, val)
	}

	val = resolveValue(t, resolver, "ratio")
	if s, ok := val.(string); !ok || s != "1.5" {
		t.Errorf("expected ratio as string \"1.5\", got %T %v", val, val)
	}
}

func TestResolveUnparseableConfig(t *testing.T) {
	resolver, err := resolve(strings.NewReader("{{ not yaml ]"))
	if err != nil {
		t.Fatalf("resolve should not fail on bad config: %v", err)
	}

	if val := resolveValue(t, resolver, "log-level"); val != nil {
		t.Errorf("expected empty config, got %v", val)
	}
}

func TestResolveReadError(t *testing.T) {
	resolver, err := resolve(&errorReader{})
	if err != nil {
		t.Fatalf("resolve should not fail on read error: %v", err)
	}

	if val := resolveValue(t, resolver, "log-level"); val != nil {
		t.Errorf("expected empty config, got %v", val)
	}
}

// errorReader is a reader that always returns an error.
type errorReader struct{}

func (e *errorReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}
