// Package exttypes provides conversions between values, strings and JSON
// text.
package exttypes

import (
	"github.com/sandrolain/gojaq/pkg/ext/extutil"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// All returns all conversion function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		ToString(),
		ToNumber(),
		ToJSON(),
		FromJSON(),
	}
}

// ToString returns the definition for tostring. Strings pass through,
// anything else is encoded as JSON.
func ToString() functions.CustomFunctionDef {
	return extutil.Unary("tostring", func(in value.Value) (value.Value, error) {
		if s, ok := in.(value.Str); ok {
			return s, nil
		}
		return toJSON(in)
	})
}

// ToNumber returns the definition for tonumber.
func ToNumber() functions.CustomFunctionDef {
	return extutil.Unary("tonumber", func(in value.Value) (value.Value, error) {
		switch x := in.(type) {
		case value.Num:
			return x, nil
		case value.Str:
			n, err := value.ParseNum(string(x))
			if err != nil {
				return nil, types.Errorf(types.ErrNotParsable, "cannot parse %s as a number", x).WithCause(err)
			}
			return n, nil
		}
		return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "tonumber", value.TypeName(in))
	})
}

// ToJSON returns the definition for tojson.
func ToJSON() functions.CustomFunctionDef {
	return extutil.Unary("tojson", toJSON)
}

// FromJSON returns the definition for fromjson.
func FromJSON() functions.CustomFunctionDef {
	return extutil.Unary("fromjson", func(in value.Value) (value.Value, error) {
		s, err := extutil.String("fromjson", in)
		if err != nil {
			return nil, err
		}
		v, err := value.ParseJSON([]byte(s))
		if err != nil {
			return nil, types.Errorf(types.ErrNotParsable, "cannot parse %q as JSON", s).WithCause(err)
		}
		return v, nil
	})
}

func toJSON(in value.Value) (value.Value, error) {
	b, err := value.JSON(in)
	if err != nil {
		return nil, err
	}
	return value.Str(b), nil
}
