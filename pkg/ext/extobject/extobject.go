// Package extobject provides object functions beyond the core catalog.
package extobject

import (
	"github.com/sandrolain/gojaq/pkg/ext/extutil"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// All returns all object function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Has(),
		ToEntries(),
		FromEntries(),
	}
}

// Has returns the definition for has(key): whether an object has the
// string key, or an array the index.
func Has() functions.CustomFunctionDef {
	return extutil.Binary("has", func(in, arg value.Value) (value.Value, error) {
		switch x := in.(type) {
		case *value.Obj:
			if k, ok := arg.(value.Str); ok {
				_, found := x.Get(string(k))
				return value.Bool(found), nil
			}
		case value.Arr:
			if _, ok := arg.(value.Num); ok {
				i, err := value.AsInt(arg)
				if err != nil {
					return nil, err
				}
				return value.Bool(i >= 0 && i < int64(len(x))), nil
			}
		}
		return nil, types.TypeMismatch(types.ErrNotIndexable, "has", value.TypeName(in), value.TypeName(arg))
	})
}

// ToEntries returns the definition for to_entries: an array of
// {"key", "value"} objects in key order.
func ToEntries() functions.CustomFunctionDef {
	return extutil.Unary("to_entries", func(in value.Value) (value.Value, error) {
		obj, err := extutil.Object("to_entries", in)
		if err != nil {
			return nil, err
		}
		out := make(value.Arr, 0, obj.Len())
		obj.Each(func(k string, v value.Value) bool {
			out = append(out, value.NewObj(
				value.Pair{Key: "key", Value: value.Str(k)},
				value.Pair{Key: "value", Value: v},
			))
			return true
		})
		return out, nil
	})
}

var (
	keyNames   = []string{"key", "k", "name", "Name", "K", "Key"}
	valueNames = []string{"value", "v", "Value", "V"}
)

// FromEntries returns the definition for from_entries. Each entry names its
// key with one of key, k, name, Name, K or Key and its value with value, v,
// Value or V. Number and boolean keys are rendered as strings.
func FromEntries() functions.CustomFunctionDef {
	return extutil.Unary("from_entries", func(in value.Value) (value.Value, error) {
		arr, err := extutil.Array("from_entries", in)
		if err != nil {
			return nil, err
		}
		pairs := make([]value.Pair, 0, len(arr))
		for _, item := range arr {
			entry, err := extutil.Object("from_entries", item)
			if err != nil {
				return nil, err
			}
			key, err := entryKey(entry)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, value.Pair{Key: key, Value: lookup(entry, valueNames)})
		}
		return value.NewObj(pairs...), nil
	})
}

func entryKey(entry *value.Obj) (string, error) {
	switch k := lookup(entry, keyNames).(type) {
	case value.Str:
		return string(k), nil
	case value.Num, value.Bool:
		return value.String(k), nil
	default:
		return "", types.TypeMismatch(types.ErrObjectKeyNotString, "from_entries", value.TypeName(k))
	}
}

// lookup returns the first non-null field among names, or null.
func lookup(obj *value.Obj, names []string) value.Value {
	for _, n := range names {
		if v, ok := obj.Get(n); ok {
			if _, isNull := v.(value.Null); !isNull {
				return v
			}
		}
	}
	return value.NullValue
}
