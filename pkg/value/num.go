package value

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v2"

	"github.com/sandrolain/gojaq/pkg/types"
)

// DefaultPrecision is the number of significant digits kept by arithmetic
// when no precision is configured.
const DefaultPrecision = 34

var zero apd.Decimal

// NewInt returns the number i.
func NewInt(i int64) Num {
	return Num{d: apd.New(i, 0)}
}

// NewFloat returns the number f. NaN and infinities are rejected.
func NewFloat(f float64) (Num, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Num{}, types.Errorf(types.ErrArithmeticCondition, "number %v is not finite", f)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Num{}, types.Errorf(types.ErrArithmeticCondition, "number %v: %v", f, err).WithCause(err)
	}
	return Num{d: d}, nil
}

// ParseNum parses a decimal literal such as "12", "-0.5" or "1e100".
func ParseNum(s string) (Num, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Num{}, types.Errorf(types.ErrArithmeticCondition, "invalid number %q", s).WithCause(err)
	}
	if d.Form != apd.Finite {
		return Num{}, types.Errorf(types.ErrArithmeticCondition, "number %q is not finite", s)
	}
	return Num{d: d}, nil
}

// FromDecimal returns a number holding a copy of d.
func FromDecimal(d *apd.Decimal) Num {
	return Num{d: new(apd.Decimal).Set(d)}
}

func (n Num) dec() *apd.Decimal {
	if n.d == nil {
		return &zero
	}
	return n.d
}

// Int64 returns n as an integer, failing if n has a fractional part or does
// not fit.
func (n Num) Int64() (int64, error) {
	return n.dec().Int64()
}

// Float64 returns the nearest float64.
func (n Num) Float64() float64 {
	f, _ := n.dec().Float64()
	return f
}

// plainZeros bounds the zeros String writes out before or after the
// significant digits.
const plainZeros = 34

// String renders n without trailing zeros, in plain decimal notation unless
// that would take more than plainZeros padding zeros; then in exponent
// notation (1.5e+100).
func (n Num) String() string {
	var r apd.Decimal
	r.Reduce(n.dec())
	adjusted := r.NumDigits() + int64(r.Exponent) - 1
	if r.Exponent > plainZeros || adjusted < -plainZeros-1 {
		return r.Text('e')
	}
	return r.Text('f')
}

// Arith performs number arithmetic under a fixed decimal context.
// The zero Arith uses DefaultPrecision.
type Arith struct {
	ctx *apd.Context
}

// DefaultArith is the Arith used by the package-level helpers.
var DefaultArith = NewArith(DefaultPrecision)

// NewArith returns an Arith rounding to precision significant digits.
func NewArith(precision uint32) Arith {
	if precision == 0 {
		precision = DefaultPrecision
	}
	return Arith{ctx: apd.BaseContext.WithPrecision(precision)}
}

// Precision returns the number of significant digits kept.
func (a Arith) Precision() uint32 {
	return a.context().Precision
}

func (a Arith) context() *apd.Context {
	if a.ctx == nil {
		return DefaultArith.ctx
	}
	return a.ctx
}

type decimalOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func (a Arith) apply(name string, op decimalOp, x, y Num) (Value, error) {
	d := new(apd.Decimal)
	if _, err := op(d, x.dec(), y.dec()); err != nil {
		return nil, types.Errorf(types.ErrArithmeticCondition, "%s: %v", name, err).WithCause(err)
	}
	return Num{d: d}, nil
}

func (a Arith) quo(x, y Num) (Value, error) {
	if y.dec().IsZero() {
		return nil, types.Errorf(types.ErrDivisionByZero, "%s cannot be divided by zero", x)
	}
	return a.apply("/", a.context().Quo, x, y)
}

// rem truncates both operands to integers before taking the remainder.
func (a Arith) rem(x, y Num) (Value, error) {
	var xi, yi, frac apd.Decimal
	x.dec().Modf(&xi, &frac)
	y.dec().Modf(&yi, &frac)
	if yi.IsZero() {
		return nil, types.Errorf(types.ErrDivisionByZero, "%s cannot be divided by zero", x)
	}
	return a.apply("%", a.context().Rem, Num{d: &xi}, Num{d: &yi})
}

func negate(n Num) Num {
	return Num{d: new(apd.Decimal).Neg(n.dec())}
}

func abs(n Num) Num {
	return Num{d: new(apd.Decimal).Abs(n.dec())}
}

// AsInt converts v to an integer. Non-numbers and numbers with a fractional
// part are cast errors.
func AsInt(v Value) (int64, error) {
	n, ok := v.(Num)
	if !ok {
		return 0, types.Errorf(types.ErrNotInteger, "cannot cast %s to an integer", TypeName(v))
	}
	i, err := n.Int64()
	if err != nil {
		return 0, types.Errorf(types.ErrNotInteger, "cannot cast %s to an integer", n).WithCause(err)
	}
	return i, nil
}

// MustNum parses s and panics on failure. It is intended for literals in
// library code and tests.
func MustNum(s string) Num {
	n, err := ParseNum(s)
	if err != nil {
		panic(fmt.Sprintf("value: MustNum(%q): %v", s, err))
	}
	return n
}
