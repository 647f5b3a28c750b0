package value

import (
	"errors"
	"testing"

	"github.com/sandrolain/gojaq/pkg/types"
)

func num(s string) Num { return MustNum(s) }

func obj(kv ...interface{}) *Obj {
	pairs := make([]Pair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, Pair{Key: kv[i].(string), Value: kv[i+1].(Value)})
	}
	return NewObj(pairs...)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{NullValue, false},
		{Bool(false), false},
		{Bool(true), true},
		{NewInt(0), true},
		{Str(""), true},
		{Arr{}, true},
		{NewObj(), true},
	}
	for _, tt := range tests {
		t.Run(String(tt.v), func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%s) = %v, want %v", String(tt.v), got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NullValue, "null"},
		{Bool(true), "boolean"},
		{NewInt(1), "number"},
		{Str("x"), "string"},
		{Arr{}, "array"},
		{NewObj(), "object"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.v); got != tt.want {
			t.Errorf("TypeName(%s) = %q, want %q", String(tt.v), got, tt.want)
		}
	}
}

func TestLengthMatchesMemberCount(t *testing.T) {
	values := []Value{
		Arr{},
		Arr{NewInt(1), Str("a"), NullValue},
		NewObj(),
		obj("a", NewInt(1), "b", NewInt(2), "c", Arr{}),
	}
	for _, v := range values {
		l, err := Length(v)
		if err != nil {
			t.Fatalf("Length(%s): %v", String(v), err)
		}
		c, err := Members(v)
		if err != nil {
			t.Fatalf("Members(%s): %v", String(v), err)
		}
		count := 0
		for _, ok := c.Next(); ok; _, ok = c.Next() {
			count++
		}
		if !Equal(l, NewInt(int64(count))) {
			t.Errorf("Length(%s) = %s, members = %d", String(v), String(l), count)
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Value
	}{
		{"null", NullValue, NewInt(0)},
		{"string runes", Str("héllo"), NewInt(5)},
		{"negative number", num("-2.5"), num("2.5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Length(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("got %s, want %s", String(got), String(tt.want))
			}
		})
	}
	if _, err := Length(Bool(true)); !errors.Is(err, types.ErrTypeError) {
		t.Errorf("Length(true) error = %v, want type error", err)
	}
}

func TestMembersOrder(t *testing.T) {
	o := obj("z", NewInt(1), "a", NewInt(2), "m", NewInt(3))
	c, err := Members(o)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for v, ok := c.Next(); ok; v, ok = c.Next() {
		got = append(got, String(v))
	}
	if want := []string{"1", "2", "3"}; len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("members = %v, want %v", got, want)
	}
	if _, err := Members(NewInt(3)); !errors.Is(err, types.ErrTypeError) {
		t.Errorf("Members(3) error = %v, want type error", err)
	}
}

func TestNewObjKeepsFirstPosition(t *testing.T) {
	o := NewObj(
		Pair{Key: "a", Value: NewInt(1)},
		Pair{Key: "b", Value: NewInt(2)},
		Pair{Key: "a", Value: NewInt(9)},
		Pair{Key: "c", Value: NewInt(3)},
	)
	if got := o.Keys(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("keys = %v", got)
	}
	if v, _ := o.Get("a"); !Equal(v, NewInt(9)) {
		t.Errorf("a = %v, want 9", v)
	}
}

func TestNumString(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{NewInt(42), "42"},
		{num("1.50"), "1.5"},
		{num("1e3"), "1000"},
		{num("-0.25"), "-0.25"},
		{num("1e34"), "10000000000000000000000000000000000"},
		{num("1e35"), "1e+35"},
		{num("-1.5e100000"), "-1.5e+100000"},
		{num("1e-35"), "0.00000000000000000000000000000000001"},
		{num("2.5e-40"), "2.5e-40"},
		{NewInt(0), "0"},
	}
	for _, tt := range tests {
		if got := String(tt.in); got != tt.want {
			t.Errorf("String = %q, want %q", got, tt.want)
		}
	}
}

func TestFromAnyToAny(t *testing.T) {
	in := map[string]interface{}{
		"b": []interface{}{1.5, "x", nil, true},
		"a": map[string]interface{}{"k": 2.0},
	}
	v, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := String(v), `{"a":{"k":2},"b":[1.5,"x",null,true]}`; got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
	back := ToAny(v).(map[string]interface{})
	if back["b"].([]interface{})[0] != 1.5 {
		t.Errorf("ToAny lost number: %v", back)
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}
