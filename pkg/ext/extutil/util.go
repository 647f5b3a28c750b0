// Package extutil provides shared helpers for the ext sub-packages.
package extutil

import (
	"context"

	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// Unary builds a native function of arity 0 that maps its input.
func Unary(name string, fn func(in value.Value) (value.Value, error)) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:  name,
		Arity: 0,
		Fn: func(_ context.Context, in value.Value, _ ...value.Value) (value.Value, error) {
			return fn(in)
		},
	}
}

// Binary builds a native function of arity 1. fn receives the input and
// one result of the operand filter.
func Binary(name string, fn func(in, arg value.Value) (value.Value, error)) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:  name,
		Arity: 1,
		Fn: func(_ context.Context, in value.Value, args ...value.Value) (value.Value, error) {
			return fn(in, args[0])
		},
	}
}

// Strings returns both values as strings, or a type error naming op.
func Strings(op string, a, b value.Value) (string, string, error) {
	x, ok1 := a.(value.Str)
	y, ok2 := b.(value.Str)
	if !ok1 || !ok2 {
		return "", "", types.TypeMismatch(types.ErrInvalidTypeOperation, op, value.TypeName(a), value.TypeName(b))
	}
	return string(x), string(y), nil
}

// String returns v as a string, or a type error naming op.
func String(op string, v value.Value) (string, error) {
	s, ok := v.(value.Str)
	if !ok {
		return "", types.TypeMismatch(types.ErrInvalidTypeOperation, op, value.TypeName(v))
	}
	return string(s), nil
}

// Array returns v as an array, or a type error naming op.
func Array(op string, v value.Value) (value.Arr, error) {
	a, ok := v.(value.Arr)
	if !ok {
		return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, op, value.TypeName(v))
	}
	return a, nil
}

// Object returns v as an object, or a type error naming op.
func Object(op string, v value.Value) (*value.Obj, error) {
	o, ok := v.(*value.Obj)
	if !ok {
		return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, op, value.TypeName(v))
	}
	return o, nil
}
