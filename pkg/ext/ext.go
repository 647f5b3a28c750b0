// Package ext provides optional native functions beyond the core builtin
// catalog, grouped by category in sub-packages:
//   - extstring  – startswith, endswith, ltrimstr, rtrimstr, ascii_downcase, split, join, …
//   - extnumeric – floor, ceil, round, sqrt
//   - extarray   – flatten, flatten(depth), unique
//   - extobject  – has, to_entries, from_entries
//   - exttypes   – tostring, tonumber, tojson, fromjson
//
// # Integration – all extensions at once
//
//	prog, err := resolver.Open(main, std.Module(), ext.WithAll())
//
// # Integration – by category
//
//	prog, err := resolver.Open(main, std.Module(),
//	    ext.WithString(),
//	    ext.WithArray(),
//	)
//
// # Integration – single function from a sub-package
//
//	import "github.com/sandrolain/gojaq/pkg/ext/extstring"
//
//	prog, err := resolver.Open(main, nil, resolver.WithFunctions(extstring.Split()))
package ext

import (
	"github.com/sandrolain/gojaq/pkg/ext/extarray"
	"github.com/sandrolain/gojaq/pkg/ext/extnumeric"
	"github.com/sandrolain/gojaq/pkg/ext/extobject"
	"github.com/sandrolain/gojaq/pkg/ext/extstring"
	"github.com/sandrolain/gojaq/pkg/ext/exttypes"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/resolver"
)

// All returns every extension function definition.
func All() []functions.CustomFunctionDef {
	var all []functions.CustomFunctionDef
	all = append(all, extstring.All()...)
	all = append(all, extnumeric.All()...)
	all = append(all, extarray.All()...)
	all = append(all, extobject.All()...)
	all = append(all, exttypes.All()...)
	return all
}

// WithAll returns a resolver option that registers all extension functions.
func WithAll() resolver.Option {
	return resolver.WithFunctions(All()...)
}

// WithString returns a resolver option for the string functions.
func WithString() resolver.Option {
	return resolver.WithFunctions(extstring.All()...)
}

// WithNumeric returns a resolver option for the numeric functions.
func WithNumeric() resolver.Option {
	return resolver.WithFunctions(extnumeric.All()...)
}

// WithArray returns a resolver option for the array functions.
func WithArray() resolver.Option {
	return resolver.WithFunctions(extarray.All()...)
}

// WithObject returns a resolver option for the object functions.
func WithObject() resolver.Option {
	return resolver.WithFunctions(extobject.All()...)
}

// WithTypes returns a resolver option for the conversion functions.
func WithTypes() resolver.Option {
	return resolver.WithFunctions(exttypes.All()...)
}
