package ast

import "github.com/sandrolain/gojaq/pkg/value"

// Identity returns the "." filter.
func Identity() *Node {
	return &Node{Type: NodeIdentity}
}

// Literal returns a filter yielding v.
func Literal(v value.Value) *Node {
	return &Node{Type: NodeLiteral, Value: v}
}

// Int returns an integer literal.
func Int(i int64) *Node {
	return Literal(value.NewInt(i))
}

// Num returns a decimal literal parsed from s. It panics on malformed input.
func Num(s string) *Node {
	return Literal(value.MustNum(s))
}

// Str returns a string literal.
func Str(s string) *Node {
	return Literal(value.Str(s))
}

// Collect returns the array constructor [f].
func Collect(f *Node) *Node {
	return &Node{Type: NodeArray, LHS: f}
}

// Object returns an object constructor.
func Object(entries ...Entry) *Node {
	return &Node{Type: NodeObject, Entries: entries}
}

// KV returns an object entry with a constant key.
func KV(key string, v *Node) Entry {
	return Entry{Key: Str(key), Value: v}
}

// Pipe chains filters left to right: fs[0] | fs[1] | ...
func Pipe(fs ...*Node) *Node {
	return chain(NodePipe, fs)
}

// Comma concatenates the outputs of filters: fs[0], fs[1], ...
func Comma(fs ...*Node) *Node {
	return chain(NodeComma, fs)
}

func chain(t NodeType, fs []*Node) *Node {
	if len(fs) == 0 {
		return Identity()
	}
	n := fs[len(fs)-1]
	for i := len(fs) - 2; i >= 0; i-- {
		n = &Node{Type: t, LHS: fs[i], RHS: n}
	}
	return n
}

// Binary returns lhs op rhs.
func Binary(op Operator, lhs, rhs *Node) *Node {
	return &Node{Type: NodeBinary, Op: op, LHS: lhs, RHS: rhs}
}

// And returns lhs and rhs.
func And(lhs, rhs *Node) *Node {
	return &Node{Type: NodeAnd, LHS: lhs, RHS: rhs}
}

// Or returns lhs or rhs.
func Or(lhs, rhs *Node) *Node {
	return &Node{Type: NodeOr, LHS: lhs, RHS: rhs}
}

// Neg returns -f.
func Neg(f *Node) *Node {
	return &Node{Type: NodeNeg, LHS: f}
}

// If returns if cond then then else els end. A nil els behaves as ".".
func If(cond, then, els *Node) *Node {
	return &Node{Type: NodeIf, Cond: cond, LHS: then, RHS: els}
}

// Index returns target[idx].
func Index(target, idx *Node) *Node {
	return &Node{Type: NodeIndex, LHS: target, RHS: idx}
}

// Field returns .name.
func Field(name string) *Node {
	return Index(Identity(), Str(name))
}

// Iterate returns target[].
func Iterate(target *Node) *Node {
	return &Node{Type: NodeIterate, LHS: target}
}

// Each returns .[].
func Each() *Node {
	return Iterate(Identity())
}

// Call returns name(args[0]; args[1]; ...).
func Call(name string, args ...*Node) *Node {
	return &Node{Type: NodeCall, Name: name, Args: args}
}
