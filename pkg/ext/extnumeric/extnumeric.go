// Package extnumeric provides rounding and root functions for numbers,
// computed with the default decimal precision.
package extnumeric

import (
	"github.com/sandrolain/gojaq/pkg/ext/extutil"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/value"
)

// All returns all numeric function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		Floor(),
		Ceil(),
		Round(),
		Sqrt(),
	}
}

// Floor returns the definition for floor.
func Floor() functions.CustomFunctionDef {
	return extutil.Unary("floor", value.DefaultArith.Floor)
}

// Ceil returns the definition for ceil.
func Ceil() functions.CustomFunctionDef {
	return extutil.Unary("ceil", value.DefaultArith.Ceil)
}

// Round returns the definition for round. Halves round away from zero.
func Round() functions.CustomFunctionDef {
	return extutil.Unary("round", value.DefaultArith.Round)
}

// Sqrt returns the definition for sqrt. Negative inputs fail.
func Sqrt() functions.CustomFunctionDef {
	return extutil.Unary("sqrt", value.DefaultArith.Sqrt)
}
