// Package extstring provides string functions beyond the core catalog.
// Register them via resolver.WithFunctions or the ext.WithString() helper.
package extstring

import (
	"strings"

	"github.com/sandrolain/gojaq/pkg/ext/extutil"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// All returns all string function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		StartsWith(),
		EndsWith(),
		LtrimStr(),
		RtrimStr(),
		AsciiDowncase(),
		AsciiUpcase(),
		Split(),
		Join(),
	}
}

// StartsWith returns the definition for startswith(prefix).
func StartsWith() functions.CustomFunctionDef {
	return extutil.Binary("startswith", func(in, arg value.Value) (value.Value, error) {
		s, prefix, err := extutil.Strings("startswith", in, arg)
		if err != nil {
			return nil, err
		}
		return value.Bool(strings.HasPrefix(s, prefix)), nil
	})
}

// EndsWith returns the definition for endswith(suffix).
func EndsWith() functions.CustomFunctionDef {
	return extutil.Binary("endswith", func(in, arg value.Value) (value.Value, error) {
		s, suffix, err := extutil.Strings("endswith", in, arg)
		if err != nil {
			return nil, err
		}
		return value.Bool(strings.HasSuffix(s, suffix)), nil
	})
}

// LtrimStr returns the definition for ltrimstr(prefix). Inputs that are not
// strings, or do not start with prefix, pass through unchanged.
func LtrimStr() functions.CustomFunctionDef {
	return extutil.Binary("ltrimstr", func(in, arg value.Value) (value.Value, error) {
		s, prefix, err := extutil.Strings("ltrimstr", in, arg)
		if err != nil {
			return in, nil
		}
		return value.Str(strings.TrimPrefix(s, prefix)), nil
	})
}

// RtrimStr returns the definition for rtrimstr(suffix).
func RtrimStr() functions.CustomFunctionDef {
	return extutil.Binary("rtrimstr", func(in, arg value.Value) (value.Value, error) {
		s, suffix, err := extutil.Strings("rtrimstr", in, arg)
		if err != nil {
			return in, nil
		}
		return value.Str(strings.TrimSuffix(s, suffix)), nil
	})
}

// AsciiDowncase returns the definition for ascii_downcase. Only ASCII
// letters change.
func AsciiDowncase() functions.CustomFunctionDef {
	return extutil.Unary("ascii_downcase", func(in value.Value) (value.Value, error) {
		s, err := extutil.String("ascii_downcase", in)
		if err != nil {
			return nil, err
		}
		return value.Str(mapASCII(s, 'A', 'Z', 'a'-'A')), nil
	})
}

// AsciiUpcase returns the definition for ascii_upcase.
func AsciiUpcase() functions.CustomFunctionDef {
	return extutil.Unary("ascii_upcase", func(in value.Value) (value.Value, error) {
		s, err := extutil.String("ascii_upcase", in)
		if err != nil {
			return nil, err
		}
		return value.Str(mapASCII(s, 'a', 'z', 'A'-'a')), nil
	})
}

func mapASCII(s string, lo, hi, delta rune) string {
	return strings.Map(func(r rune) rune {
		if r >= lo && r <= hi {
			return r + delta
		}
		return r
	}, s)
}

// Split returns the definition for split(sep). An empty input gives an
// empty array.
func Split() functions.CustomFunctionDef {
	return extutil.Binary("split", func(in, arg value.Value) (value.Value, error) {
		s, sep, err := extutil.Strings("split", in, arg)
		if err != nil {
			return nil, err
		}
		out := value.Arr{}
		if s == "" {
			return out, nil
		}
		for _, part := range strings.Split(s, sep) {
			out = append(out, value.Str(part))
		}
		return out, nil
	})
}

// Join returns the definition for join(sep). Numbers and booleans are
// rendered, null joins as an empty string.
func Join() functions.CustomFunctionDef {
	return extutil.Binary("join", func(in, arg value.Value) (value.Value, error) {
		arr, err := extutil.Array("join", in)
		if err != nil {
			return nil, err
		}
		sep, err := extutil.String("join", arg)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(arr))
		for i, item := range arr {
			switch x := item.(type) {
			case value.Null:
			case value.Str:
				parts[i] = string(x)
			case value.Num, value.Bool:
				parts[i] = value.String(x)
			default:
				return nil, types.TypeMismatch(types.ErrInvalidTypeOperation, "join", value.TypeName(item))
			}
		}
		return value.Str(strings.Join(parts, sep)), nil
	})
}
