package value

import (
	"github.com/cockroachdb/apd/v2"

	"github.com/sandrolain/gojaq/pkg/types"
)

// Floor rounds a number towards negative infinity.
func (a Arith) Floor(v Value) (Value, error) {
	return a.unary("floor", v, a.context().Floor)
}

// Ceil rounds a number towards positive infinity.
func (a Arith) Ceil(v Value) (Value, error) {
	return a.unary("ceil", v, a.context().Ceil)
}

// Round rounds a number to the nearest integer, halves away from zero.
func (a Arith) Round(v Value) (Value, error) {
	c := *a.context()
	c.Rounding = apd.RoundHalfUp
	return a.unary("round", v, c.RoundToIntegralValue)
}

// Sqrt returns the square root of a non-negative number.
func (a Arith) Sqrt(v Value) (Value, error) {
	return a.unary("sqrt", v, a.context().Sqrt)
}

func (a Arith) unary(name string, v Value, op func(d, x *apd.Decimal) (apd.Condition, error)) (Value, error) {
	n, ok := v.(Num)
	if !ok {
		return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, name, TypeName(v))
	}
	d := new(apd.Decimal)
	if _, err := op(d, n.dec()); err != nil {
		return nil, types.Errorf(types.ErrArithmeticCondition, "%s of %s: %v", name, n, err).WithCause(err)
	}
	return Num{d: d}, nil
}
