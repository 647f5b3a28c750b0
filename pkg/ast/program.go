package ast

import "github.com/sandrolain/gojaq/pkg/types"

// Definition is a named filter with filter-valued parameters:
//
//	def name(p1; p2): body;
type Definition struct {
	Name   string
	Params []string
	Body   *Node
}

// Key returns the (name, arity) the definition is registered under.
func (d *Definition) Key() types.Key {
	return types.Key{Name: d.Name, Arity: len(d.Params)}
}

// Definitions is an ordered list of definitions.
type Definitions []*Definition

// Module holds library-level definitions, resolved before Main.
type Module struct {
	Defs Definitions
}

// NewModule creates a module from definitions.
func NewModule(defs ...*Definition) *Module {
	return &Module{Defs: defs}
}

// Main holds program-level definitions and the filter to run.
type Main struct {
	Defs Definitions
	Term *Node
}

// NewMain creates a program with term as its top-level filter.
func NewMain(term *Node, defs ...*Definition) *Main {
	return &Main{Defs: defs, Term: term}
}

// Def creates a definition.
func Def(name string, params []string, body *Node) *Definition {
	return &Definition{Name: name, Params: params, Body: body}
}
