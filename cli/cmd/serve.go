package cmd

import (
	"context"
	"os"

	"github.com/nuposix/nuposix/log"
	"github.com/nuposix/nuposix/plugin"
)

// Serve speaks the Nushell plugin protocol on stdin/stdout. The engine
// invokes this command itself after `plugin add`; it is not intended for
// interactive use.
type Serve struct{}

// Run executes the serve command.
func (s *Serve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	log.DebugContext(ctx, "serving plugin protocol")

	return plugin.Serve(ctx, os.Stdin, os.Stdout)
}
