// Package ast defines the symbolic ("open") filter AST.
//
// The parser (not part of this module) produces a Main and a Module built
// from these nodes. Function calls are recorded by name and operand list;
// the resolver later links every call to its definition.
package ast

import "github.com/sandrolain/gojaq/pkg/value"

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types.
const (
	NodeIdentity NodeType = "identity" // .
	NodeLiteral  NodeType = "literal"  // constant value

	// Constructors
	NodeArray  NodeType = "array"  // [f]
	NodeObject NodeType = "object" // {k: v, ...}

	// Composition
	NodePipe  NodeType = "pipe"  // f | g
	NodeComma NodeType = "comma" // f, g

	// Operators
	NodeBinary NodeType = "binary" // f + g, f == g, ...
	NodeAnd    NodeType = "and"    // f and g
	NodeOr     NodeType = "or"     // f or g
	NodeNeg    NodeType = "neg"    // -f

	// Control flow
	NodeIf NodeType = "if" // if c then t else e end

	// Navigation
	NodeIndex   NodeType = "index"   // t[i], .key
	NodeIterate NodeType = "iterate" // t[]

	// Functions
	NodeCall NodeType = "call" // name(f; g; ...)
)

// Operator is a binary operator symbol.
type Operator string

// Binary operators.
const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
	OpRem Operator = "%"
	OpEq  Operator = "=="
	OpNe  Operator = "!="
	OpLt  Operator = "<"
	OpLe  Operator = "<="
	OpGt  Operator = ">"
	OpGe  Operator = ">="
)

// Node is a node of the symbolic filter AST.
//
// Field use by type:
//   - NodeLiteral: Value
//   - NodeArray, NodeNeg, NodeIterate: LHS
//   - NodePipe, NodeComma, NodeAnd, NodeOr: LHS, RHS
//   - NodeBinary: Op, LHS, RHS
//   - NodeIf: Cond, LHS (then), RHS (else, nil means identity)
//   - NodeIndex: LHS (target), RHS (index)
//   - NodeObject: Entries
//   - NodeCall: Name, Args
type Node struct {
	Type     NodeType
	Value    value.Value
	Op       Operator
	Name     string
	Position int // source offset; 0 when unknown

	LHS     *Node
	RHS     *Node
	Cond    *Node
	Args    []*Node
	Entries []Entry
}

// Entry is one key/value pair of an object constructor. Both sides are
// filters evaluated against the constructor's input.
type Entry struct {
	Key   *Node
	Value *Node
}

// Arity returns the number of operands of a call node.
func (n *Node) Arity() int {
	return len(n.Args)
}

// String returns a string representation of the node type.
func (n *Node) String() string {
	if n.Type == NodeCall {
		return n.Name
	}
	return string(n.Type)
}
