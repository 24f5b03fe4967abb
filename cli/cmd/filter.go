package cmd

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nuposix/nuposix/pkg"
	"github.com/nuposix/nuposix/posix"
)

// filterEnv is the expression environment for --filter predicates.
// Each export is evaluated with its decoded name and value bound.
type filterEnv struct {
	Name  string `expr:"name"`
	Value string `expr:"value"`
}

// compileFilter compiles a --filter predicate expression.
func compileFilter(source string) (*vm.Program, error) {
	program, err := expr.Compile(source,
		expr.Env(filterEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, pkg.ErrFilterCompile.Wrap(err).Wrapf("%q", source)
	}

	return program, nil
}

// filterExports returns the exports for which the predicate holds,
// preserving relative order.
func filterExports(source string, exports []posix.Export) ([]posix.Export, error) {
	program, err := compileFilter(source)
	if err != nil {
		return nil, err
	}

	var kept []posix.Export

	for _, export := range exports {
		out, err := expr.Run(program, filterEnv{
			Name:  export.Name,
			Value: export.Value,
		})
		if err != nil {
			return nil, pkg.ErrFilterEval.Wrap(err)
		}

		if keep, ok := out.(bool); ok && keep {
			kept = append(kept, export)
		}
	}

	return kept, nil
}
