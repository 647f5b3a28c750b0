package evaluator

import (
	"slices"

	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/value"
)

// native calls a custom function once per combination of operand results.
// Operands are evaluated against in, leftmost operand in the outer loop.
func (r *runner) native(def *functions.CustomFunctionDef, args []*Filter, env *frame, in value.Value) Iter {
	return r.product(args, env, in, nil, func(vals []value.Value) Iter {
		return lazy(func() Iter {
			return result(def.Fn(r.ctx, in, vals...))
		})
	})
}

func (r *runner) product(args []*Filter, env *frame, in value.Value, acc []value.Value, fn func([]value.Value) Iter) Iter {
	if len(args) == 0 {
		return fn(acc)
	}
	return flatMap(r.run(args[0], env, in), func(v value.Value) Iter {
		next := append(slices.Clone(acc), v)
		return r.product(args[1:], env, in, next, fn)
	})
}
