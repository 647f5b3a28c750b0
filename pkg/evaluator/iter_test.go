package evaluator

import (
	"errors"
	"testing"

	"github.com/sandrolain/gojaq/pkg/value"
)

// countingIter yields 0, 1, 2, ... forever and records how many items
// were pulled.
type countingIter struct {
	pulled int
}

func (it *countingIter) Next() (Result, bool) {
	v := value.NewInt(int64(it.pulled))
	it.pulled++
	return Result{Value: v}, true
}

func drain(t *testing.T, it Iter) ([]value.Value, error) {
	t.Helper()
	var out []value.Value
	for i := 0; i < 1000; i++ {
		r, ok := it.Next()
		if !ok {
			return out, nil
		}
		if r.Err != nil {
			if _, more := it.Next(); more {
				t.Fatal("stream continued after an error")
			}
			return out, r.Err
		}
		out = append(out, r.Value)
	}
	t.Fatal("stream did not end")
	return nil, nil
}

func ints(vs []value.Value) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		n, _ := value.AsInt(v)
		out[i] = n
	}
	return out
}

func equalInts(a []int64, b ...int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTakeDoesNotOverpull(t *testing.T) {
	src := &countingIter{}
	got, err := drain(t, take(src, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(ints(got), 0, 1, 2) {
		t.Errorf("got %v", ints(got))
	}
	if src.pulled != 3 {
		t.Errorf("pulled %d items, want 3", src.pulled)
	}
}

func TestConcatStopsAfterError(t *testing.T) {
	boom := errors.New("boom")
	built := false
	it := concat(
		func() Iter { return once(value.NewInt(1)) },
		func() Iter { return fail(boom) },
		func() Iter {
			built = true
			return once(value.NewInt(2))
		},
	)
	got, err := drain(t, it)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !equalInts(ints(got), 1) {
		t.Errorf("got %v", ints(got))
	}
	if built {
		t.Error("part after the error was built")
	}
}

func TestFlatMapIsLazy(t *testing.T) {
	src := &countingIter{}
	it := flatMap(src, func(v value.Value) Iter {
		return &sliceIter{values: []value.Value{v, v}}
	})
	got, _ := drain(t, take(it, 3))
	if !equalInts(ints(got), 0, 0, 1) {
		t.Errorf("got %v", ints(got))
	}
	if src.pulled != 2 {
		t.Errorf("pulled %d items, want 2", src.pulled)
	}
}

func TestFilterMapKeepsPrefixBeforeError(t *testing.T) {
	boom := errors.New("boom")
	src := concat(
		func() Iter { return &sliceIter{values: []value.Value{value.NewInt(1), value.NewInt(2)}} },
		func() Iter { return fail(boom) },
	)
	it := filterMap(src, func(v value.Value) (value.Value, bool) {
		n, _ := value.AsInt(v)
		return v, n > 1
	})
	got, err := drain(t, it)
	if !errors.Is(err, boom) || !equalInts(ints(got), 2) {
		t.Errorf("got %v, %v", ints(got), err)
	}
}

func TestRecurseExpandsOnDemand(t *testing.T) {
	steps := 0
	step := func(v value.Value) Iter {
		steps++
		n, _ := value.AsInt(v)
		return once(value.NewInt(n + 1))
	}
	it := recurse(value.NewInt(0), step, func() error { return nil })
	r, _ := it.Next()
	if n, _ := value.AsInt(r.Value); n != 0 || steps != 0 {
		t.Fatalf("first item %v after %d steps", r.Value, steps)
	}
	got, _ := drain(t, take(it, 3))
	if !equalInts(ints(got), 1, 2, 3) {
		t.Errorf("got %v", ints(got))
	}
	if steps != 3 {
		t.Errorf("ran %d steps, want 3", steps)
	}
}

func TestRecurseDepthFirst(t *testing.T) {
	// Children of n are 2n+1 and 2n+2 while below 7.
	step := func(v value.Value) Iter {
		n, _ := value.AsInt(v)
		if 2*n+1 >= 7 {
			return emptyIter{}
		}
		return &sliceIter{values: []value.Value{value.NewInt(2*n + 1), value.NewInt(2*n + 2)}}
	}
	got, err := drain(t, recurse(value.NewInt(0), step, func() error { return nil }))
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(ints(got), 0, 1, 3, 4, 2, 5, 6) {
		t.Errorf("got %v", ints(got))
	}
}

func TestCycleIter(t *testing.T) {
	noCheck := func() error { return nil }
	t.Run("repeats", func(t *testing.T) {
		it := &cycleIter{load: func() ([]value.Value, error) {
			return []value.Value{value.NewInt(1), value.NewInt(2)}, nil
		}, check: noCheck}
		got, _ := drain(t, take(it, 5))
		if !equalInts(ints(got), 1, 2, 1, 2, 1) {
			t.Errorf("got %v", ints(got))
		}
	})
	t.Run("empty", func(t *testing.T) {
		it := &cycleIter{load: func() ([]value.Value, error) { return nil, nil }, check: noCheck}
		got, err := drain(t, it)
		if err != nil || len(got) != 0 {
			t.Errorf("got %v, %v", got, err)
		}
	})
	t.Run("load error", func(t *testing.T) {
		boom := errors.New("boom")
		it := &cycleIter{load: func() ([]value.Value, error) {
			return []value.Value{value.NewInt(7)}, boom
		}, check: noCheck}
		got, err := drain(t, it)
		if !errors.Is(err, boom) || !equalInts(ints(got), 7) {
			t.Errorf("got %v, %v", ints(got), err)
		}
	})
}
