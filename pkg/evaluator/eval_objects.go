package evaluator

import (
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// collectArray implements [f]: all results of f in one array. An error in
// f's stream is the only output.
func (r *runner) collectArray(f *Filter, env *frame, in value.Value) Iter {
	return lazy(func() Iter {
		vs, err := r.collect(r.run(f, env, in))
		if err != nil {
			return fail(err)
		}
		if vs == nil {
			vs = []value.Value{}
		}
		return once(value.Arr(vs))
	})
}

// buildObject yields one object per combination of entry key and value
// results, entries taken left to right. acc holds the pairs chosen so far;
// the object is built once per combination.
func (r *runner) buildObject(entries []Entry, env *frame, in value.Value, acc []value.Pair) Iter {
	if len(entries) == 0 {
		return once(value.NewObj(acc...))
	}
	e, rest := entries[0], entries[1:]
	return flatMap(r.run(e.Key, env, in), func(k value.Value) Iter {
		key, ok := k.(value.Str)
		if !ok {
			return fail(types.TypeMismatch(types.ErrObjectKeyNotString, "object key", value.TypeName(k)))
		}
		return flatMap(r.run(e.Value, env, in), func(v value.Value) Iter {
			pairs := append(acc[:len(acc):len(acc)], value.Pair{Key: string(key), Value: v})
			return r.buildObject(rest, env, in, pairs)
		})
	})
}
