package evaluator

import (
	"fmt"

	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// callRef runs a generator builtin over its operand filters.
func (r *runner) callRef(b functions.Builtin, args []*Filter, env *frame, in value.Value) Iter {
	switch b.ID {
	case functions.Empty:
		return emptyIter{}
	case functions.Select:
		return filterMap(r.run(args[0], env, in), func(c value.Value) (value.Value, bool) {
			return in, value.Truthy(c)
		})
	case functions.Recurse:
		return recurse(in, func(v value.Value) Iter {
			return r.run(args[0], env, v)
		}, r.interrupted)
	case functions.Repeat:
		return &cycleIter{
			load: func() ([]value.Value, error) {
				return r.collect(r.run(args[0], env, in))
			},
			check: r.interrupted,
		}
	case functions.First:
		return take(r.run(args[0], env, in), 1)
	case functions.Last:
		return lazy(func() Iter {
			return r.last(args[0], env, in)
		})
	case functions.Limit:
		return flatMap(r.run(args[0], env, in), func(n value.Value) Iter {
			count, err := limitCount(n)
			if err != nil {
				return fail(err)
			}
			if count == 0 {
				return emptyIter{}
			}
			return take(r.run(args[1], env, in), count)
		})
	case functions.Fold:
		return lazy(func() Iter {
			return r.fold(args[0], args[1], args[2], env, in)
		})
	default:
		return fail(fmt.Errorf("evaluator: %s is not a generator builtin", b.Key()))
	}
}

func limitCount(n value.Value) (int64, error) {
	count, err := value.AsInt(n)
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, types.Errorf(types.ErrNegativeCount, "limit count %d is negative", count)
	}
	return count, nil
}

// last drains f and keeps its final result. Any error is the only output.
func (r *runner) last(f *Filter, env *frame, in value.Value) Iter {
	it := r.run(f, env, in)
	var (
		final value.Value
		found bool
	)
	for {
		if err := r.interrupted(); err != nil {
			return fail(err)
		}
		res, ok := it.Next()
		if !ok {
			break
		}
		if res.Err != nil {
			return fail(res.Err)
		}
		final, found = res.Value, true
	}
	if !found {
		return emptyIter{}
	}
	return once(final)
}

// fold carries a set of accumulators through the values of source. Every
// accumulator is replaced by all results of update applied to
// {"acc": accumulator, "x": value}. Any error aborts the fold and is the
// only output.
func (r *runner) fold(source, init, update *Filter, env *frame, in value.Value) Iter {
	accs, err := r.collect(r.run(init, env, in))
	if err != nil {
		return fail(err)
	}
	src := r.run(source, env, in)
	for {
		if err := r.interrupted(); err != nil {
			return fail(err)
		}
		res, ok := src.Next()
		if !ok {
			break
		}
		if res.Err != nil {
			return fail(res.Err)
		}
		next := make([]value.Value, 0, len(accs))
		for _, acc := range accs {
			step := value.NewObj(
				value.Pair{Key: "acc", Value: acc},
				value.Pair{Key: "x", Value: res.Value},
			)
			outs, err := r.collect(r.run(update, env, step))
			if err != nil {
				return fail(err)
			}
			next = append(next, outs...)
		}
		accs = next
	}
	return &sliceIter{values: accs}
}
