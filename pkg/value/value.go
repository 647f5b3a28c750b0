// Package value implements the runtime value model of gojaq.
//
// A Value is one of Null, Bool, Num, Str, Arr or *Obj. Values are immutable
// once constructed: arrays share their backing slice and objects share their
// ordered map, so a single input can be handed to many filter branches
// without copying.
package value

import (
	"github.com/cockroachdb/apd/v2"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "boolean", "number", "string", "array", "object"}

// String returns the canonical lowercase type tag.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Value is a runtime value.
type Value interface {
	Kind() Kind
}

// Null is the null value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Num is an arbitrary-precision decimal number.
// The zero Num is 0.
type Num struct {
	d *apd.Decimal
}

// Str is a string value.
type Str string

// Arr is an ordered sequence of values. An Arr must not be modified after
// it has been handed out.
type Arr []Value

// Obj maps string keys to values, preserving insertion order.
type Obj struct {
	m *linkedhashmap.Map
}

// Pair is a key/value entry used to build objects.
type Pair struct {
	Key   string
	Value Value
}

// NullValue is the singleton null.
var NullValue Value = Null{}

func (Null) Kind() Kind { return KindNull }
func (Bool) Kind() Kind { return KindBool }
func (Num) Kind() Kind  { return KindNumber }
func (Str) Kind() Kind  { return KindString }
func (Arr) Kind() Kind  { return KindArray }
func (*Obj) Kind() Kind { return KindObject }

// TypeName returns the canonical type tag of v.
func TypeName(v Value) string {
	if v == nil {
		return KindNull.String()
	}
	return v.Kind().String()
}

// Truthy reports whether v counts as true. Only null and false are falsy.
func Truthy(v Value) bool {
	switch b := v.(type) {
	case nil, Null:
		return false
	case Bool:
		return bool(b)
	default:
		return true
	}
}

// NewObj builds an object from pairs. Later pairs override earlier pairs
// with the same key but keep the position of the first occurrence.
func NewObj(pairs ...Pair) *Obj {
	m := linkedhashmap.New()
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return &Obj{m: m}
}

// Len returns the number of keys.
func (o *Obj) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Size()
}

// Get returns the value stored under key.
func (o *Obj) Get(key string) (Value, bool) {
	if o == nil || o.m == nil {
		return nil, false
	}
	v, ok := o.m.Get(key)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Keys returns the keys in insertion order.
func (o *Obj) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Each(func(k string, _ Value) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Each calls fn for every entry in insertion order until fn returns false.
func (o *Obj) Each(fn func(key string, v Value) bool) {
	if o == nil || o.m == nil {
		return
	}
	it := o.m.Iterator()
	for it.Next() {
		if !fn(it.Key().(string), it.Value().(Value)) {
			return
		}
	}
}

func (o *Obj) clone() *Obj {
	m := linkedhashmap.New()
	o.Each(func(k string, v Value) bool {
		m.Put(k, v)
		return true
	})
	return &Obj{m: m}
}
