package resolver

import (
	"fmt"
	"log/slog"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/evaluator"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/types"
)

// env maps (name, arity) to the definition currently bound to it.
type env map[types.Key]*evaluator.Def

// newEnv seeds an environment with a wrapper definition per builtin, then
// per custom function. A wrapper's body applies the operation to the
// wrapper's own parameters.
func newEnv(custom []functions.CustomFunctionDef) env {
	e := make(env)
	for _, b := range functions.Catalog() {
		e[b.Key()] = &evaluator.Def{
			Name:  b.Name,
			Arity: b.Arity,
			Body:  &evaluator.Filter{Type: evaluator.FilterBuiltin, Builtin: b, Args: params(b.Arity)},
		}
	}
	for i := range custom {
		c := &custom[i]
		e[c.Key()] = &evaluator.Def{
			Name:  c.Name,
			Arity: c.Arity,
			Body:  &evaluator.Filter{Type: evaluator.FilterNative, Native: c, Args: params(c.Arity)},
		}
	}
	return e
}

func params(n int) []*evaluator.Filter {
	if n == 0 {
		return nil
	}
	out := make([]*evaluator.Filter, n)
	for i := range out {
		out[i] = &evaluator.Filter{Type: evaluator.FilterParam, Param: i}
	}
	return out
}

type resolver struct {
	env      env
	forward  env
	logger   *slog.Logger
	debug    bool
	resolved int
}

// group resolves defs in order. Each body sees the builtins, the earlier
// groups, the earlier definitions of this group and its own definition.
// A key not bound yet falls back to the first definition of the group with
// that key, so mutual recursion and forward references still link.
func (r *resolver) group(name string, defs ast.Definitions) error {
	handles := make([]*evaluator.Def, len(defs))
	r.forward = make(env)
	for i, d := range defs {
		if d == nil || d.Body == nil {
			return fmt.Errorf("resolver: %s definition %d has no body", name, i)
		}
		h := &evaluator.Def{Name: d.Name, Arity: len(d.Params)}
		handles[i] = h
		if _, ok := r.forward[d.Key()]; !ok {
			r.forward[d.Key()] = h
		}
	}
	defer func() { r.forward = nil }()
	for i, d := range defs {
		r.env[d.Key()] = handles[i]
		body, err := r.close(d.Body, d.Params)
		if err != nil {
			return err
		}
		handles[i].Body = body
		r.resolved++
		if r.debug {
			r.logger.Debug("definition resolved",
				"name", d.Name,
				"arity", len(d.Params),
				"group", name)
		}
	}
	return nil
}

// close converts n to its closed form. scope holds the parameter names of
// the enclosing definition.
func (r *resolver) close(n *ast.Node, scope []string) (*evaluator.Filter, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Type {
	case ast.NodeIdentity:
		return &evaluator.Filter{Type: evaluator.FilterIdentity}, nil
	case ast.NodeLiteral:
		return &evaluator.Filter{Type: evaluator.FilterLiteral, Value: n.Value}, nil
	case ast.NodeCall:
		return r.call(n, scope)
	case ast.NodeObject:
		entries := make([]evaluator.Entry, len(n.Entries))
		for i, e := range n.Entries {
			k, err := r.close(e.Key, scope)
			if err != nil {
				return nil, err
			}
			v, err := r.close(e.Value, scope)
			if err != nil {
				return nil, err
			}
			entries[i] = evaluator.Entry{Key: k, Value: v}
		}
		return &evaluator.Filter{Type: evaluator.FilterObject, Entries: entries}, nil
	}

	t, ok := filterTypes[n.Type]
	if !ok {
		return nil, fmt.Errorf("resolver: unsupported node type %q", n.Type)
	}
	f := &evaluator.Filter{Type: t, Op: n.Op}
	var err error
	if f.Cond, err = r.close(n.Cond, scope); err != nil {
		return nil, err
	}
	if f.LHS, err = r.close(n.LHS, scope); err != nil {
		return nil, err
	}
	if f.RHS, err = r.close(n.RHS, scope); err != nil {
		return nil, err
	}
	if err := validate(n, f); err != nil {
		return nil, err
	}
	return f, nil
}

var filterTypes = map[ast.NodeType]evaluator.FilterType{
	ast.NodeArray:   evaluator.FilterArray,
	ast.NodePipe:    evaluator.FilterPipe,
	ast.NodeComma:   evaluator.FilterComma,
	ast.NodeBinary:  evaluator.FilterBinary,
	ast.NodeAnd:     evaluator.FilterAnd,
	ast.NodeOr:      evaluator.FilterOr,
	ast.NodeNeg:     evaluator.FilterNeg,
	ast.NodeIf:      evaluator.FilterIf,
	ast.NodeIndex:   evaluator.FilterIndex,
	ast.NodeIterate: evaluator.FilterIterate,
}

// validate checks that the operands a node type requires are present.
func validate(n *ast.Node, f *evaluator.Filter) error {
	var missing bool
	switch f.Type {
	case evaluator.FilterArray, evaluator.FilterNeg, evaluator.FilterIterate:
		missing = f.LHS == nil
	case evaluator.FilterIf:
		missing = f.Cond == nil || f.LHS == nil
	default:
		missing = f.LHS == nil || f.RHS == nil
	}
	if missing {
		return fmt.Errorf("resolver: %s node is missing an operand", n.Type)
	}
	return nil
}

func (r *resolver) call(n *ast.Node, scope []string) (*evaluator.Filter, error) {
	if len(n.Args) == 0 {
		for i, p := range scope {
			if p == n.Name {
				return &evaluator.Filter{Type: evaluator.FilterParam, Param: i}, nil
			}
		}
	}
	key := types.Key{Name: n.Name, Arity: len(n.Args)}
	def, ok := r.lookup(key)
	if !ok {
		err := types.UnboundFunction(key)
		if n.Position > 0 {
			err.Position = n.Position
		}
		return nil, err
	}
	args := make([]*evaluator.Filter, len(n.Args))
	for i, a := range n.Args {
		f, err := r.close(a, scope)
		if err != nil {
			return nil, err
		}
		args[i] = f
	}
	return &evaluator.Filter{Type: evaluator.FilterCall, Def: def, Args: args}, nil
}

func (r *resolver) lookup(key types.Key) (*evaluator.Def, bool) {
	if def, ok := r.env[key]; ok {
		return def, true
	}
	def, ok := r.forward[key]
	return def, ok
}
