// Package resolver turns a symbolic filter AST into a closed Program.
//
// Every call site is linked to the definition it names, so evaluation never
// looks names up. Resolution happens group by group: the module definitions
// first, then the main definitions, then the main term. A call links to the
// definition bound at the point it is resolved, so a later definition never
// rebinds an earlier caller. Names defined further down the same group are
// still reachable, which allows mutual recursion and forward references.
//
// # Example
//
//	main := ast.NewMain(ast.Call("map", ast.Binary(ast.OpAdd, ast.Identity(), ast.Int(1))))
//	prog, err := resolver.Open(main, std.Module())
//	if err != nil {
//	    log.Fatal(err)
//	}
package resolver

import (
	"fmt"
	"log/slog"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/evaluator"
	"github.com/sandrolain/gojaq/pkg/functions"
)

// Options configures resolution.
type Options struct {
	// Debug enables debug logging of every resolved definition.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
	// CustomFunctions are native functions added to the environment after
	// the builtins. They shadow builtins with the same name and arity.
	CustomFunctions []functions.CustomFunctionDef
}

// Option configures resolution behavior.
type Option func(*Options)

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) Option {
	return func(opts *Options) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithCustomFunction registers a native function under (name, arity).
//
// Example:
//
//	resolver.WithCustomFunction("double", 0, func(ctx context.Context, in value.Value, _ ...value.Value) (value.Value, error) {
//	    return value.Add(in, in)
//	})
func WithCustomFunction(name string, arity int, fn functions.CustomFunc) Option {
	return func(opts *Options) {
		opts.CustomFunctions = append(opts.CustomFunctions, functions.CustomFunctionDef{
			Name:  name,
			Arity: arity,
			Fn:    fn,
		})
	}
}

// WithFunctions registers several native functions at once.
func WithFunctions(defs ...functions.CustomFunctionDef) Option {
	return func(opts *Options) {
		opts.CustomFunctions = append(opts.CustomFunctions, defs...)
	}
}

// Open resolves main against the builtins, the custom functions and module,
// and returns the closed program. module may be nil. The first unbound call
// aborts resolution with a types.ErrUnboundFunction error.
func Open(main *ast.Main, module *ast.Module, opts ...Option) (*evaluator.Program, error) {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	if main == nil || main.Term == nil {
		return nil, fmt.Errorf("resolver: main has no term")
	}
	for _, c := range options.CustomFunctions {
		if c.Fn == nil || c.Arity < 0 {
			return nil, fmt.Errorf("resolver: invalid custom function %s", c.Key())
		}
		if _, ok := functions.Lookup(c.Name, c.Arity); ok && options.Debug {
			options.Logger.Debug("custom function shadows builtin", "name", c.Name, "arity", c.Arity)
		}
	}

	env := newEnv(options.CustomFunctions)
	r := &resolver{env: env, logger: options.Logger, debug: options.Debug}

	if module != nil {
		if err := r.group("module", module.Defs); err != nil {
			return nil, err
		}
	}
	if err := r.group("main", main.Defs); err != nil {
		return nil, err
	}

	root, err := r.close(main.Term, nil)
	if err != nil {
		return nil, err
	}
	if r.debug {
		r.logger.Debug("program resolved", "definitions", r.resolved)
	}
	return evaluator.NewProgram(root, r.resolved), nil
}
