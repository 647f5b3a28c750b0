// Package functions holds the builtin catalog and the types used to register
// custom native functions.
//
// The catalog is a fixed table from (name, arity) to a builtin descriptor.
// It seeds name resolution before any user definition is considered, so a
// definition with the same name and arity simply shadows the builtin.
//
// # Custom functions
//
// Callers can add native Go functions with [resolver.WithCustomFunction]:
//
//	prog, err := resolver.Open(main, module,
//	    resolver.WithCustomFunction("double", 0, func(ctx context.Context, in value.Value, _ ...value.Value) (value.Value, error) {
//	        return value.DefaultArith.Add(in, in)
//	    }),
//	)
package functions

import (
	"context"
	"sync"

	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// Kind distinguishes the two builtin families.
type Kind uint8

const (
	// New builtins produce exactly one result or fail.
	New Kind = iota
	// Ref builtins are generators over their operand filters.
	Ref
)

// String returns the family name.
func (k Kind) String() string {
	if k == Ref {
		return "ref"
	}
	return "new"
}

// ID identifies a builtin operation.
type ID uint8

// Builtin operations.
const (
	Null ID = iota
	True
	False
	Not
	All
	Any
	Add
	Length
	Type
	Keys
	Sort
	Min
	Max
	Map

	Empty
	Select
	Recurse
	Repeat
	First
	Last
	Limit
	Fold
)

// Builtin describes one catalog entry.
type Builtin struct {
	Name  string
	Arity int
	Kind  Kind
	ID    ID
}

// Key returns the (name, arity) the builtin is registered under.
func (b Builtin) Key() types.Key {
	return types.Key{Name: b.Name, Arity: b.Arity}
}

var catalog = [...]Builtin{
	{Name: "null", Arity: 0, Kind: New, ID: Null},
	{Name: "true", Arity: 0, Kind: New, ID: True},
	{Name: "false", Arity: 0, Kind: New, ID: False},
	{Name: "not", Arity: 0, Kind: New, ID: Not},
	{Name: "all", Arity: 0, Kind: New, ID: All},
	{Name: "any", Arity: 0, Kind: New, ID: Any},
	{Name: "add", Arity: 0, Kind: New, ID: Add},
	{Name: "length", Arity: 0, Kind: New, ID: Length},
	{Name: "type", Arity: 0, Kind: New, ID: Type},
	{Name: "keys", Arity: 0, Kind: New, ID: Keys},
	{Name: "sort", Arity: 0, Kind: New, ID: Sort},
	{Name: "min", Arity: 0, Kind: New, ID: Min},
	{Name: "max", Arity: 0, Kind: New, ID: Max},
	{Name: "map", Arity: 1, Kind: New, ID: Map},

	{Name: "empty", Arity: 0, Kind: Ref, ID: Empty},
	{Name: "select", Arity: 1, Kind: Ref, ID: Select},
	{Name: "recurse", Arity: 1, Kind: Ref, ID: Recurse},
	{Name: "repeat", Arity: 1, Kind: Ref, ID: Repeat},
	{Name: "first", Arity: 1, Kind: Ref, ID: First},
	{Name: "last", Arity: 1, Kind: Ref, ID: Last},
	{Name: "limit", Arity: 2, Kind: Ref, ID: Limit},
	{Name: "fold", Arity: 3, Kind: Ref, ID: Fold},
}

var (
	builtinIndex     map[types.Key]Builtin
	builtinIndexOnce sync.Once
)

func initBuiltinIndex() {
	builtinIndexOnce.Do(func() {
		builtinIndex = make(map[types.Key]Builtin, len(catalog))
		for _, b := range catalog {
			builtinIndex[b.Key()] = b
		}
	})
}

// Catalog returns every builtin in table order.
func Catalog() []Builtin {
	out := make([]Builtin, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup retrieves a builtin by name and arity.
func Lookup(name string, arity int) (Builtin, bool) {
	initBuiltinIndex()
	b, ok := builtinIndex[types.Key{Name: name, Arity: arity}]
	return b, ok
}

// CustomFunc is the signature for native custom functions.
// input is the value the call is applied to; args holds one value per
// operand filter, in order.
type CustomFunc func(ctx context.Context, input value.Value, args ...value.Value) (value.Value, error)

// CustomFunctionDef describes a native function registered under
// (Name, Arity). Each operand filter is evaluated against the input and every
// combination of their results invokes Fn once.
type CustomFunctionDef struct {
	// Name is the function name as it appears in filters.
	Name string
	// Arity is the number of operand filters.
	Arity int
	// Fn is the implementation.
	Fn CustomFunc
}

// Key returns the (name, arity) the function is registered under.
func (c CustomFunctionDef) Key() types.Key {
	return types.Key{Name: c.Name, Arity: c.Arity}
}
