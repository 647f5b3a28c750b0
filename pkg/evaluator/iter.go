package evaluator

import "github.com/sandrolain/gojaq/pkg/value"

// Result is one item of an output stream: a value or an error.
type Result struct {
	// Value is the produced value, or nil when Err is set.
	Value value.Value
	// Err is non-nil when the branch producing this item failed. No further
	// items follow an error in the same stream.
	Err error
}

// Iter is a pull-based stream of results. Next returns false once the
// stream is exhausted. Nothing is computed until Next is called.
type Iter interface {
	Next() (Result, bool)
}

type emptyIter struct{}

func (emptyIter) Next() (Result, bool) { return Result{}, false }

type onceIter struct {
	r    Result
	done bool
}

func (it *onceIter) Next() (Result, bool) {
	if it.done {
		return Result{}, false
	}
	it.done = true
	return it.r, true
}

func once(v value.Value) Iter {
	return &onceIter{r: Result{Value: v}}
}

func fail(err error) Iter {
	return &onceIter{r: Result{Err: err}}
}

func result(v value.Value, err error) Iter {
	if err != nil {
		return fail(err)
	}
	if v == nil {
		v = value.NullValue
	}
	return once(v)
}

// lazyIter builds its source on the first pull.
type lazyIter struct {
	build func() Iter
	src   Iter
}

func lazy(build func() Iter) Iter {
	return &lazyIter{build: build}
}

func (it *lazyIter) Next() (Result, bool) {
	if it.src == nil {
		it.src = it.build()
		it.build = nil
	}
	return it.src.Next()
}

type sliceIter struct {
	values []value.Value
	pos    int
}

func (it *sliceIter) Next() (Result, bool) {
	if it.pos >= len(it.values) {
		return Result{}, false
	}
	v := it.values[it.pos]
	it.pos++
	return Result{Value: v}, true
}

// concatIter yields every item of each part in turn. A part is only built
// when the previous one is exhausted.
type concatIter struct {
	parts []func() Iter
	cur   Iter
	done  bool
}

func concat(parts ...func() Iter) Iter {
	return &concatIter{parts: parts}
}

func (it *concatIter) Next() (Result, bool) {
	for !it.done {
		if it.cur == nil {
			if len(it.parts) == 0 {
				it.done = true
				break
			}
			it.cur = it.parts[0]()
			it.parts = it.parts[1:]
		}
		if r, ok := it.cur.Next(); ok {
			if r.Err != nil {
				it.done = true
			}
			return r, true
		}
		it.cur = nil
	}
	return Result{}, false
}

// flatMapIter feeds every value of src to fn and yields everything fn's
// streams produce, in order.
type flatMapIter struct {
	src  Iter
	fn   func(value.Value) Iter
	cur  Iter
	done bool
}

func flatMap(src Iter, fn func(value.Value) Iter) Iter {
	return &flatMapIter{src: src, fn: fn}
}

func (it *flatMapIter) Next() (Result, bool) {
	for !it.done {
		if it.cur != nil {
			if r, ok := it.cur.Next(); ok {
				if r.Err != nil {
					it.done = true
				}
				return r, true
			}
			it.cur = nil
		}
		r, ok := it.src.Next()
		if !ok {
			it.done = true
			break
		}
		if r.Err != nil {
			it.done = true
			return r, true
		}
		it.cur = it.fn(r.Value)
	}
	return Result{}, false
}

// filterMapIter maps each value of src through fn, dropping values for
// which fn reports false. Errors pass through and end the stream.
type filterMapIter struct {
	src  Iter
	fn   func(value.Value) (value.Value, bool)
	done bool
}

func filterMap(src Iter, fn func(value.Value) (value.Value, bool)) Iter {
	return &filterMapIter{src: src, fn: fn}
}

func (it *filterMapIter) Next() (Result, bool) {
	for !it.done {
		r, ok := it.src.Next()
		if !ok {
			it.done = true
			break
		}
		if r.Err != nil {
			it.done = true
			return r, true
		}
		if v, keep := it.fn(r.Value); keep {
			return Result{Value: v}, true
		}
	}
	return Result{}, false
}

// takeIter yields at most n items of src and never pulls beyond them.
type takeIter struct {
	src Iter
	n   int64
}

func take(src Iter, n int64) Iter {
	return &takeIter{src: src, n: n}
}

func (it *takeIter) Next() (Result, bool) {
	if it.n <= 0 {
		return Result{}, false
	}
	r, ok := it.src.Next()
	if !ok || r.Err != nil {
		it.n = 0
	} else {
		it.n--
	}
	return r, ok
}

// recurseIter walks the tree spanned by repeatedly applying step, depth
// first and pre-order, starting with the root itself. A value is expanded
// only when the item after it is requested.
type recurseIter struct {
	step       func(value.Value) Iter
	check      func() error
	pending    value.Value
	hasPending bool
	started    bool
	stack      []Iter
	done       bool
}

func recurse(root value.Value, step func(value.Value) Iter, check func() error) Iter {
	return &recurseIter{step: step, check: check, pending: root}
}

func (it *recurseIter) Next() (Result, bool) {
	if it.done {
		return Result{}, false
	}
	if !it.started {
		it.started = true
		it.hasPending = true
		return Result{Value: it.pending}, true
	}
	if it.hasPending {
		it.stack = append(it.stack, it.step(it.pending))
		it.pending, it.hasPending = nil, false
	}
	for len(it.stack) > 0 {
		if err := it.check(); err != nil {
			it.done = true
			return Result{Err: err}, true
		}
		top := it.stack[len(it.stack)-1]
		r, ok := top.Next()
		if !ok {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		if r.Err != nil {
			it.done = true
			return r, true
		}
		it.pending, it.hasPending = r.Value, true
		return r, true
	}
	it.done = true
	return Result{}, false
}

// cycleIter loads a finite set of values once and repeats it forever. If
// loading failed, the values collected before the failure are yielded once,
// followed by the error.
type cycleIter struct {
	load   func() ([]value.Value, error)
	check  func() error
	values []value.Value
	err    error
	loaded bool
	pos    int
	done   bool
}

func (it *cycleIter) Next() (Result, bool) {
	if it.done {
		return Result{}, false
	}
	if !it.loaded {
		it.values, it.err = it.load()
		it.loaded = true
	}
	if it.pos >= len(it.values) {
		if it.err != nil {
			it.done = true
			return Result{Err: it.err}, true
		}
		if len(it.values) == 0 {
			it.done = true
			return Result{}, false
		}
		if err := it.check(); err != nil {
			it.done = true
			return Result{Err: err}, true
		}
		it.pos = 0
	}
	v := it.values[it.pos]
	it.pos++
	return Result{Value: v}, true
}
