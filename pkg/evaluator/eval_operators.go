package evaluator

import (
	"fmt"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/value"
)

// binary evaluates lhs op rhs over the cartesian product of both operand
// streams. Like jq, the right operand drives the outer loop.
func (r *runner) binary(f *Filter, env *frame, in value.Value) Iter {
	return flatMap(r.run(f.RHS, env, in), func(rv value.Value) Iter {
		return flatMap(r.run(f.LHS, env, in), func(lv value.Value) Iter {
			return result(r.apply(f.Op, lv, rv))
		})
	})
}

func (r *runner) apply(op ast.Operator, l, rv value.Value) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		return r.arith.Add(l, rv)
	case ast.OpSub:
		return r.arith.Sub(l, rv)
	case ast.OpMul:
		return r.arith.Mul(l, rv)
	case ast.OpDiv:
		return r.arith.Div(l, rv)
	case ast.OpRem:
		return r.arith.Rem(l, rv)
	case ast.OpEq:
		return value.Bool(value.Equal(l, rv)), nil
	case ast.OpNe:
		return value.Bool(!value.Equal(l, rv)), nil
	case ast.OpLt:
		return value.Bool(value.Compare(l, rv) < 0), nil
	case ast.OpLe:
		return value.Bool(value.Compare(l, rv) <= 0), nil
	case ast.OpGt:
		return value.Bool(value.Compare(l, rv) > 0), nil
	case ast.OpGe:
		return value.Bool(value.Compare(l, rv) >= 0), nil
	default:
		return nil, fmt.Errorf("unsupported binary operator: %s", op)
	}
}

// and short-circuits: a falsy left value yields false without running rhs.
func (r *runner) and(f *Filter, env *frame, in value.Value) Iter {
	return flatMap(r.run(f.LHS, env, in), func(l value.Value) Iter {
		if !value.Truthy(l) {
			return once(value.Bool(false))
		}
		return r.truthiness(f.RHS, env, in)
	})
}

// or short-circuits: a truthy left value yields true without running rhs.
func (r *runner) or(f *Filter, env *frame, in value.Value) Iter {
	return flatMap(r.run(f.LHS, env, in), func(l value.Value) Iter {
		if value.Truthy(l) {
			return once(value.Bool(true))
		}
		return r.truthiness(f.RHS, env, in)
	})
}

func (r *runner) truthiness(f *Filter, env *frame, in value.Value) Iter {
	return flatMap(r.run(f, env, in), func(v value.Value) Iter {
		return once(value.Bool(value.Truthy(v)))
	})
}
