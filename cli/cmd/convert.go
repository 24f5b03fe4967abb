package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nuposix/nuposix/log"
	"github.com/nuposix/nuposix/nush"
	"github.com/nuposix/nuposix/posix"
)

// Convert reads POSIX export statements from the given sources and prints
// the equivalent Nushell assignments to stdout.
type Convert struct {
	Filter string `help:"Emit only exports matching this expression (fields: name, value)." placeholder:"EXPR" short:"F"`
	Prefix string `help:"Namespace prefix for emitted assignments."                                            default:"$env"`

	Sources []string `arg:"" default:"-" help:"Input file(s) or '-' for stdin." name:"source" optional:""`

	out io.Writer
}

// Run executes the convert command.
func (c *Convert) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	input, err := readSources(c.Sources)
	if err != nil {
		return err
	}

	exports := posix.Parse(input)

	if c.Filter != "" {
		exports, err = filterExports(c.Filter, exports)
		if err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "scanned input",
		slog.Int("exports", len(exports)),
		slog.Int("bytes", len(input)),
	)

	output := nush.Renderer{Prefix: c.Prefix}.Render(exports)
	if output == "" {
		return nil
	}

	w := c.out
	if w == nil {
		w = os.Stdout
	}

	_, err = fmt.Fprintln(w, output)

	return err
}
