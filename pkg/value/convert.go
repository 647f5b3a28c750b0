package value

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v2"
)

// FromAny converts a Go native value (as produced by encoding/json or a
// YAML decoder) into a Value. Map keys are inserted in sorted order.
func FromAny(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return NullValue, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint64:
		return ParseNum(strconv.FormatUint(v, 10))
	case float32:
		return NewFloat(float64(v))
	case float64:
		return NewFloat(v)
	case json.Number:
		return ParseNum(v.String())
	case *apd.Decimal:
		return FromDecimal(v), nil
	case string:
		return Str(v), nil
	case []interface{}:
		out := make(Arr, len(v))
		for i, item := range v {
			conv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("value: index %d: %w", i, err)
			}
			out[i] = conv
		}
		return out, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		pairs := make([]Pair, 0, len(keys))
		for _, k := range keys {
			conv, err := FromAny(v[k])
			if err != nil {
				return nil, fmt.Errorf("value: key %q: %w", k, err)
			}
			pairs = append(pairs, Pair{Key: k, Value: conv})
		}
		return NewObj(pairs...), nil
	default:
		return nil, fmt.Errorf("value: unsupported Go type %T", x)
	}
}

// MustFromAny is like FromAny but panics on failure.
func MustFromAny(x interface{}) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

// ToAny converts v into Go native values. Numbers become float64.
func ToAny(v Value) interface{} {
	switch x := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(x)
	case Num:
		return x.Float64()
	case Str:
		return string(x)
	case Arr:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = ToAny(item)
		}
		return out
	case *Obj:
		out := make(map[string]interface{}, x.Len())
		x.Each(func(k string, item Value) bool {
			out[k] = ToAny(item)
			return true
		})
		return out
	}
	return nil
}

// String returns a compact debugging representation of v.
func String(v Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func (Null) String() string   { return "null" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (s Str) String() string  { return strconv.Quote(string(s)) }
func (a Arr) String() string  { return String(a) }
func (o *Obj) String() string { return String(o) }

func write(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case nil, Null:
		b.WriteString("null")
	case Arr:
		b.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				b.WriteByte(',')
			}
			write(b, item)
		}
		b.WriteByte(']')
	case *Obj:
		b.WriteByte('{')
		first := true
		x.Each(func(k string, item Value) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			write(b, item)
			return true
		})
		b.WriteByte('}')
	case fmt.Stringer:
		b.WriteString(x.String())
	}
}
