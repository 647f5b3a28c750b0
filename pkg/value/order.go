package value

import (
	"slices"
	"strings"

	"github.com/sandrolain/gojaq/pkg/types"
)

// rank orders the variants: null < false < true < numbers < strings <
// arrays < objects.
func rank(v Value) int {
	switch x := v.(type) {
	case nil, Null:
		return 0
	case Bool:
		if x {
			return 2
		}
		return 1
	case Num:
		return 3
	case Str:
		return 4
	case Arr:
		return 5
	default:
		return 6
	}
}

// Compare returns -1, 0 or +1. It is total over all values.
func Compare(a, b Value) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case Num:
		return x.dec().Cmp(b.(Num).dec())
	case Str:
		return strings.Compare(string(x), string(b.(Str)))
	case Arr:
		y := b.(Arr)
		for i := 0; i < len(x) && i < len(y); i++ {
			if c := Compare(x[i], y[i]); c != 0 {
				return c
			}
		}
		return compareInts(len(x), len(y))
	case *Obj:
		return compareObjects(x, b.(*Obj))
	}
	return 0
}

// Equal reports whether a and b are the same value. Object key order does
// not matter.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// Objects compare by their sorted key sets first, then by values in key order.
func compareObjects(x, y *Obj) int {
	kx, ky := sortedKeys(x), sortedKeys(y)
	for i := 0; i < len(kx) && i < len(ky); i++ {
		if c := strings.Compare(kx[i], ky[i]); c != 0 {
			return c
		}
	}
	if c := compareInts(len(kx), len(ky)); c != 0 {
		return c
	}
	for _, k := range kx {
		vx, _ := x.Get(k)
		vy, _ := y.Get(k)
		if c := Compare(vx, vy); c != 0 {
			return c
		}
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func sortedKeys(o *Obj) []string {
	keys := o.Keys()
	slices.Sort(keys)
	return keys
}

// Sort returns a sorted copy of an array.
func Sort(v Value) (Value, error) {
	arr, ok := v.(Arr)
	if !ok {
		return nil, types.TypeMismatch(types.ErrNotComparable, "sort", TypeName(v))
	}
	out := slices.Clone(arr)
	slices.SortStableFunc(out, Compare)
	return out, nil
}

// Min returns the smallest element of an array, or null if it is empty.
func Min(v Value) (Value, error) {
	return extreme("min", v, -1)
}

// Max returns the largest element of an array, or null if it is empty.
func Max(v Value) (Value, error) {
	return extreme("max", v, 1)
}

func extreme(op string, v Value, sign int) (Value, error) {
	arr, ok := v.(Arr)
	if !ok {
		return nil, types.TypeMismatch(types.ErrNotComparable, op, TypeName(v))
	}
	if len(arr) == 0 {
		return NullValue, nil
	}
	best := arr[0]
	for _, x := range arr[1:] {
		if Compare(x, best)*sign >= 0 {
			best = x
		}
	}
	return best, nil
}

// Keys returns the sorted keys of an object or the indices of an array.
func Keys(v Value) (Value, error) {
	switch x := v.(type) {
	case *Obj:
		keys := sortedKeys(x)
		out := make(Arr, len(keys))
		for i, k := range keys {
			out[i] = Str(k)
		}
		return out, nil
	case Arr:
		out := make(Arr, len(x))
		for i := range x {
			out[i] = NewInt(int64(i))
		}
		return out, nil
	}
	return nil, types.TypeMismatch(types.ErrNotIterable, "keys", TypeName(v))
}
