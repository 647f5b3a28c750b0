package evaluator

import (
	"context"
	"fmt"

	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// runner carries the per-run state shared by every branch of one evaluation.
type runner struct {
	ctx   context.Context
	arith value.Arith
}

// interrupted reports a cancelled or expired context as an engine error.
func (r *runner) interrupted() error {
	if err := r.ctx.Err(); err != nil {
		return cancelled(err)
	}
	return nil
}

func cancelled(err error) error {
	return types.NewError(types.ErrCancelled, "evaluation cancelled", -1).WithCause(err)
}

// run returns the lazy output stream of f applied to in, with env binding
// the parameters of the definition f belongs to.
func (r *runner) run(f *Filter, env *frame, in value.Value) Iter {
	switch f.Type {
	case FilterIdentity:
		return once(in)
	case FilterLiteral:
		return once(f.Value)
	case FilterPipe:
		return flatMap(r.run(f.LHS, env, in), func(v value.Value) Iter {
			return r.run(f.RHS, env, v)
		})
	case FilterComma:
		return concat(
			func() Iter { return r.run(f.LHS, env, in) },
			func() Iter { return r.run(f.RHS, env, in) },
		)
	case FilterArray:
		return r.collectArray(f.LHS, env, in)
	case FilterObject:
		return r.buildObject(f.Entries, env, in, make([]value.Pair, 0, len(f.Entries)))
	case FilterBinary:
		return r.binary(f, env, in)
	case FilterAnd:
		return r.and(f, env, in)
	case FilterOr:
		return r.or(f, env, in)
	case FilterNeg:
		return flatMap(r.run(f.LHS, env, in), func(v value.Value) Iter {
			return result(value.Neg(v))
		})
	case FilterIf:
		return flatMap(r.run(f.Cond, env, in), func(c value.Value) Iter {
			if value.Truthy(c) {
				return r.run(f.LHS, env, in)
			}
			if f.RHS == nil {
				return once(in)
			}
			return r.run(f.RHS, env, in)
		})
	case FilterIndex:
		return flatMap(r.run(f.RHS, env, in), func(k value.Value) Iter {
			return flatMap(r.run(f.LHS, env, in), func(t value.Value) Iter {
				return result(value.Index(t, k))
			})
		})
	case FilterIterate:
		return flatMap(r.run(f.LHS, env, in), r.members)
	case FilterCall:
		return lazy(func() Iter {
			if f.Def == nil || f.Def.Body == nil {
				return fail(fmt.Errorf("evaluator: call of unresolved definition"))
			}
			return r.run(f.Def.Body, newFrame(f.Args, env), in)
		})
	case FilterParam:
		c, ok := env.param(f.Param)
		if !ok {
			return fail(fmt.Errorf("evaluator: parameter %d is not bound", f.Param))
		}
		return r.run(c.filter, c.env, in)
	case FilterBuiltin:
		if f.Builtin.Kind == functions.New {
			return lazy(func() Iter {
				return result(r.callNew(f.Builtin, f.Args, env, in))
			})
		}
		return r.callRef(f.Builtin, f.Args, env, in)
	case FilterNative:
		return r.native(f.Native, f.Args, env, in)
	default:
		return fail(fmt.Errorf("evaluator: unsupported filter type %d", f.Type))
	}
}

// members yields the elements of an array or the values of an object.
func (r *runner) members(v value.Value) Iter {
	c, err := value.Members(v)
	if err != nil {
		return fail(err)
	}
	return &cursorIter{c: c}
}

type cursorIter struct {
	c *value.Cursor
}

func (it *cursorIter) Next() (Result, bool) {
	v, ok := it.c.Next()
	if !ok {
		return Result{}, false
	}
	return Result{Value: v}, true
}

// collect drains it. The first error aborts collection and is returned.
func (r *runner) collect(it Iter) ([]value.Value, error) {
	var out []value.Value
	for {
		if err := r.interrupted(); err != nil {
			return out, err
		}
		res, ok := it.Next()
		if !ok {
			return out, nil
		}
		if res.Err != nil {
			return out, res.Err
		}
		out = append(out, res.Value)
	}
}
