package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML configuration file.
//
// The file is a flat mapping keyed by flag name. Flag names with hyphens
// (e.g., "log-level") may use underscores in the config file (e.g.,
// "log_level"); both forms are accepted. Command-line flags override
// config file values.
//
// Example config file:
//
//	log-level: debug
//	log_format: text
//	log-pretty: true
//
// An unreadable or unparseable file yields an empty configuration rather
// than an error, matching the converter's silent-degradation posture.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return config{}, nil
	}

	var raw map[string]any

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return config{}, nil
	}

	return config(raw), nil
}

// config implements [kong.Resolver] for YAML flag-default files.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	value, ok := c[flag.Name]
	if !ok {
		// Try the underscore variant of a hyphenated flag name.
		value, ok = c[strings.ReplaceAll(flag.Name, "-", "_")]
	}

	if !ok {
		// Not found - let Kong use defaults.
		return nil, nil
	}

	// Kong expects numbers as strings for parsing.
	switch num := value.(type) {
	case int64:
		return strconv.FormatInt(num, 10), nil
	case uint64:
		return strconv.FormatUint(num, 10), nil
	case float64:
		return strconv.FormatFloat(num, 'f', -1, 64), nil
	}

	return value, nil
}
