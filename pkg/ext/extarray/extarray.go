// Package extarray provides array functions beyond the core catalog.
package extarray

import (
	"math"

	"github.com/sandrolain/gojaq/pkg/ext/extutil"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// All returns all array function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Flatten(),
		FlattenDepth(),
		Unique(),
	}
}

// Flatten returns the definition for flatten: nested arrays are flattened
// completely.
func Flatten() functions.CustomFunctionDef {
	return extutil.Unary("flatten", func(in value.Value) (value.Value, error) {
		arr, err := extutil.Array("flatten", in)
		if err != nil {
			return nil, err
		}
		return flattenArray(arr, math.MaxInt), nil
	})
}

// FlattenDepth returns the definition for flatten(depth).
func FlattenDepth() functions.CustomFunctionDef {
	return extutil.Binary("flatten", func(in, arg value.Value) (value.Value, error) {
		arr, err := extutil.Array("flatten", in)
		if err != nil {
			return nil, err
		}
		depth, err := value.AsInt(arg)
		if err != nil {
			return nil, err
		}
		if depth < 0 {
			return nil, types.Errorf(types.ErrNegativeCount, "flatten depth %d is negative", depth)
		}
		return flattenArray(arr, int(depth)), nil
	})
}

func flattenArray(arr value.Arr, depth int) value.Arr {
	out := value.Arr{}
	for _, item := range arr {
		if inner, ok := item.(value.Arr); ok && depth > 0 {
			out = append(out, flattenArray(inner, depth-1)...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Unique returns the definition for unique: the sorted array without
// duplicates.
func Unique() functions.CustomFunctionDef {
	return extutil.Unary("unique", func(in value.Value) (value.Value, error) {
		sorted, err := value.Sort(in)
		if err != nil {
			return nil, err
		}
		out := value.Arr{}
		for _, item := range sorted.(value.Arr) {
			if len(out) > 0 && value.Equal(out[len(out)-1], item) {
				continue
			}
			out = append(out, item)
		}
		return out, nil
	})
}
