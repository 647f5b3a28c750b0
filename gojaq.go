// Package gojaq is a jq-style filter evaluation engine.
//
// A filter consumes one JSON-like value and produces a lazy stream of zero,
// one or many values. Filters are built as an AST (package ast), resolved
// into a closed Program (package resolver) and run by an Evaluator (package
// evaluator). Package std supplies the standard library definitions.
//
// # Quick Start
//
//	// map(. + 1)
//	main := ast.NewMain(ast.Call("map", ast.Binary(ast.OpAdd, ast.Identity(), ast.Int(1))))
//
//	// Resolve and run in one call
//	out, err := gojaq.Run(ctx, main, []interface{}{1, 2, 3})
//
//	// Resolve once, run many times
//	prog, err := gojaq.Open(main, std.Module())
//	res := prog.Run(ctx, input)
//
//	// Configured engine with a program cache
//	eng, err := gojaq.NewEngine(cfg)
//	res, err := eng.Run(ctx, "inc", main, input)
//
// # More Information
//
// For detailed documentation, see:
//   - AST: github.com/sandrolain/gojaq/pkg/ast
//   - Resolver: github.com/sandrolain/gojaq/pkg/resolver
//   - Evaluator: github.com/sandrolain/gojaq/pkg/evaluator
//   - Values: github.com/sandrolain/gojaq/pkg/value
package gojaq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sandrolain/gojaq/pkg/ast"
	"github.com/sandrolain/gojaq/pkg/cache"
	"github.com/sandrolain/gojaq/pkg/config"
	"github.com/sandrolain/gojaq/pkg/evaluator"
	"github.com/sandrolain/gojaq/pkg/functions"
	"github.com/sandrolain/gojaq/pkg/resolver"
	"github.com/sandrolain/gojaq/pkg/std"
	"github.com/sandrolain/gojaq/pkg/value"
)

// Version returns the current version of gojaq.
func Version() string {
	return "v0.1.0-dev"
}

// Open resolves main against the builtins and module.
//
// The program can be run many times against different inputs. It is safe
// for concurrent use.
func Open(main *ast.Main, module *ast.Module, opts ...resolver.Option) (*evaluator.Program, error) {
	return resolver.Open(main, module, opts...)
}

// MustOpen is like Open but panics if main cannot be resolved.
// It simplifies safe initialization of global variables.
func MustOpen(main *ast.Main, module *ast.Module, opts ...resolver.Option) *evaluator.Program {
	prog, err := Open(main, module, opts...)
	if err != nil {
		panic(fmt.Sprintf("gojaq: Open: %v", err))
	}
	return prog
}

// Run resolves main with the standard library and collects its outputs for
// input. input may be a value.Value or any value accepted by value.FromAny.
//
// For repeated runs of the same filter, use Open instead.
func Run(ctx context.Context, main *ast.Main, input interface{}, opts ...evaluator.EvalOption) ([]value.Value, error) {
	prog, err := Open(main, std.Module())
	if err != nil {
		return nil, err
	}
	in, err := value.FromAny(input)
	if err != nil {
		return nil, err
	}
	return evaluator.New(opts...).Eval(ctx, prog, in)
}

// Engine runs filters with configured settings and caches resolved
// programs by key. Safe for concurrent use.
type Engine struct {
	cfg       config.Config
	logger    *slog.Logger
	cache     *cache.Cache
	eval      *evaluator.Evaluator
	module    *ast.Module
	functions []functions.CustomFunctionDef
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for resolution and evaluation.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithModule replaces the standard library module.
func WithModule(module *ast.Module) EngineOption {
	return func(e *Engine) {
		e.module = module
	}
}

// WithFunctions registers native functions for every program the engine
// resolves.
func WithFunctions(defs ...functions.CustomFunctionDef) EngineOption {
	return func(e *Engine) {
		e.functions = append(e.functions, defs...)
	}
}

// NewEngine validates cfg and builds an engine.
func NewEngine(cfg config.Config, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, module: std.Module()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.cache = cache.New(cfg.CacheSize)
	evalOpts := append(cfg.EvalOptions(), evaluator.WithLogger(e.logger))
	e.eval = evaluator.New(evalOpts...)
	return e, nil
}

// Program returns the program cached under key, resolving main on a miss.
// The key alone identifies the program: once key is cached, main is ignored
// until the entry is evicted or removed with Cache().Invalidate. Use a
// distinct key for every distinct filter.
func (e *Engine) Program(key string, main *ast.Main) (*evaluator.Program, error) {
	return e.cache.GetOrOpen(key, func() (*evaluator.Program, error) {
		opts := append(e.cfg.ResolverOptions(),
			resolver.WithLogger(e.logger),
			resolver.WithFunctions(e.functions...))
		return resolver.Open(main, e.module, opts...)
	})
}

// Run resolves (or reuses) the program under key and starts it on input.
// As with Program, a main passed under an already cached key is not
// resolved; the cached program runs.
func (e *Engine) Run(ctx context.Context, key string, main *ast.Main, input value.Value) (*evaluator.Results, error) {
	prog, err := e.Program(key, main)
	if err != nil {
		return nil, err
	}
	return e.eval.Run(ctx, prog, input), nil
}

// Cache returns the engine's program cache.
func (e *Engine) Cache() *cache.Cache {
	return e.cache
}

// Config returns the engine's settings.
func (e *Engine) Config() config.Config {
	return e.cfg
}
