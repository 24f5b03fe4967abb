package cmd

import (
	"context"

	"github.com/nuposix/nuposix/cli/cmd/repl"
)

// Repl opens an interactive preview: POSIX export statements typed at the
// prompt are converted live, with fuzzy filtering over variable names.
type Repl struct {
	Prefix string `help:"Namespace prefix for emitted assignments." default:"$env"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, r.Prefix)
}
