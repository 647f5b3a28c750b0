package value

import (
	"strings"
	"unicode/utf8"

	"github.com/sandrolain/gojaq/pkg/types"
)

// Add combines x and y with the + operator of DefaultArith.
func Add(x, y Value) (Value, error) {
	return DefaultArith.Add(x, y)
}

// Add implements +: number addition, string, array concatenation and
// right-biased object union. Null is the identity on either side.
func (a Arith) Add(x, y Value) (Value, error) {
	switch l := x.(type) {
	case nil, Null:
		if y == nil {
			return NullValue, nil
		}
		return y, nil
	case Num:
		if r, ok := y.(Num); ok {
			return a.apply("+", a.context().Add, l, r)
		}
	case Str:
		if r, ok := y.(Str); ok {
			return l + r, nil
		}
	case Arr:
		if r, ok := y.(Arr); ok {
			out := make(Arr, 0, len(l)+len(r))
			out = append(out, l...)
			return append(out, r...), nil
		}
	case *Obj:
		if r, ok := y.(*Obj); ok {
			out := l.clone()
			r.Each(func(k string, v Value) bool {
				out.m.Put(k, v)
				return true
			})
			return out, nil
		}
	}
	if _, ok := y.(Null); ok || y == nil {
		return x, nil
	}
	return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "+", TypeName(x), TypeName(y))
}

// Sub implements -: number subtraction and array difference.
func (a Arith) Sub(x, y Value) (Value, error) {
	switch l := x.(type) {
	case Num:
		if r, ok := y.(Num); ok {
			return a.apply("-", a.context().Sub, l, r)
		}
	case Arr:
		if r, ok := y.(Arr); ok {
			out := make(Arr, 0, len(l))
			for _, v := range l {
				if !contains(r, v) {
					out = append(out, v)
				}
			}
			return out, nil
		}
	}
	return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "-", TypeName(x), TypeName(y))
}

// Mul implements *: number multiplication and recursive object merge.
func (a Arith) Mul(x, y Value) (Value, error) {
	switch l := x.(type) {
	case Num:
		if r, ok := y.(Num); ok {
			return a.apply("*", a.context().Mul, l, r)
		}
	case *Obj:
		if r, ok := y.(*Obj); ok {
			return deepMerge(l, r), nil
		}
	}
	return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "*", TypeName(x), TypeName(y))
}

// Div implements /: number division and string splitting.
func (a Arith) Div(x, y Value) (Value, error) {
	switch l := x.(type) {
	case Num:
		if r, ok := y.(Num); ok {
			return a.quo(l, r)
		}
	case Str:
		if r, ok := y.(Str); ok {
			parts := strings.Split(string(l), string(r))
			out := make(Arr, len(parts))
			for i, p := range parts {
				out[i] = Str(p)
			}
			return out, nil
		}
	}
	return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "/", TypeName(x), TypeName(y))
}

// Rem implements % on the integer parts of two numbers.
func (a Arith) Rem(x, y Value) (Value, error) {
	if l, ok := x.(Num); ok {
		if r, ok := y.(Num); ok {
			return a.rem(l, r)
		}
	}
	return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "%", TypeName(x), TypeName(y))
}

// Neg negates a number.
func Neg(v Value) (Value, error) {
	if n, ok := v.(Num); ok {
		return negate(n), nil
	}
	return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "-", TypeName(v))
}

// Length returns the size of v: rune count for strings, element count for
// arrays, key count for objects, 0 for null and the absolute value of a
// number. Booleans have no length.
func Length(v Value) (Value, error) {
	switch x := v.(type) {
	case nil, Null:
		return NewInt(0), nil
	case Num:
		return abs(x), nil
	case Str:
		return NewInt(int64(utf8.RuneCountInString(string(x)))), nil
	case Arr:
		return NewInt(int64(len(x))), nil
	case *Obj:
		return NewInt(int64(x.Len())), nil
	default:
		return nil, types.TypeMismatch(types.ErrNoLength, "length", TypeName(v))
	}
}

// Index looks up k in v. Missing keys and out of range indices yield null,
// as does any lookup on null.
func Index(v, k Value) (Value, error) {
	switch x := v.(type) {
	case nil, Null:
		switch k.(type) {
		case Str, Num, Null:
			return NullValue, nil
		}
	case *Obj:
		if key, ok := k.(Str); ok {
			if got, ok := x.Get(string(key)); ok {
				return got, nil
			}
			return NullValue, nil
		}
	case Arr:
		if _, ok := k.(Num); ok {
			i, err := AsInt(k)
			if err != nil {
				return nil, err
			}
			if i < 0 {
				i += int64(len(x))
			}
			if i < 0 || i >= int64(len(x)) {
				return NullValue, nil
			}
			return x[i], nil
		}
	}
	return nil, types.TypeMismatch(types.ErrNotIndexable, "index", TypeName(v), TypeName(k))
}

func contains(arr Arr, v Value) bool {
	for _, x := range arr {
		if Equal(x, v) {
			return true
		}
	}
	return false
}

func deepMerge(l, r *Obj) *Obj {
	out := l.clone()
	r.Each(func(k string, rv Value) bool {
		if lv, ok := out.Get(k); ok {
			lo, lok := lv.(*Obj)
			ro, rok := rv.(*Obj)
			if lok && rok {
				out.m.Put(k, deepMerge(lo, ro))
				return true
			}
		}
		out.m.Put(k, rv)
		return true
	})
	return out
}
