package evaluator

import (
	"context"
	"sync"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
	"github.com/sandrolain/gojaq/pkg/value"
)

// FilterType identifies the type of a closed filter node.
type FilterType uint8

// Closed filter node types.
const (
	FilterIdentity FilterType = iota
	FilterLiteral
	FilterArray
	FilterObject
	FilterPipe
	FilterComma
	FilterBinary
	FilterAnd
	FilterOr
	FilterNeg
	FilterIf
	FilterIndex
	FilterIterate
	FilterCall    // call of a resolved definition
	FilterParam   // reference to a parameter of the enclosing definition
	FilterBuiltin // catalog builtin applied to Args
	FilterNative  // custom native function applied to Args
)

// Filter is a node of the closed (resolved) filter form. Every call site
// holds a direct handle to its definition, so a Filter never needs a name
// lookup at run time.
//
// Field use mirrors ast.Node; in addition:
//   - FilterCall: Def, Args (operands bound to the callee's parameters)
//   - FilterParam: Param (index into the enclosing definition's parameters)
//   - FilterBuiltin: Builtin, Args
//   - FilterNative: Native, Args
type Filter struct {
	Type  FilterType
	Value value.Value
	Op    ast.Operator

	LHS     *Filter
	RHS     *Filter
	Cond    *Filter
	Args    []*Filter
	Entries []Entry

	Def     *Def
	Param   int
	Builtin functions.Builtin
	Native  *functions.CustomFunctionDef
}

// Entry is a closed object constructor entry.
type Entry struct {
	Key   *Filter
	Value *Filter
}

// Def is a resolved definition shared by all of its call sites. The
// resolver creates it before resolving the body, so recursive call sites
// can point at it, and sets Body once the body is resolved.
type Def struct {
	Name  string
	Arity int
	Body  *Filter
}

// Key returns the (name, arity) of the definition.
func (d *Def) Key() types.Key {
	return types.Key{Name: d.Name, Arity: d.Arity}
}

// Program is a fully resolved filter ready to run. It is immutable and
// safe for concurrent use.
type Program struct {
	root *Filter
	defs int
}

// NewProgram wraps a closed root filter. defs is the number of definitions
// that were resolved to build it.
func NewProgram(root *Filter, defs int) *Program {
	return &Program{root: root, defs: defs}
}

// Definitions returns the number of definitions resolved into the program.
func (p *Program) Definitions() int {
	return p.defs
}

var (
	defaultEvaluator     *Evaluator
	defaultEvaluatorOnce sync.Once
)

// Run evaluates the program against input with a default Evaluator.
func (p *Program) Run(ctx context.Context, input value.Value) *Results {
	defaultEvaluatorOnce.Do(func() { defaultEvaluator = New() })
	return defaultEvaluator.Run(ctx, p, input)
}
