// Package evaluator runs closed filters against JSON values.
//
// A filter maps one input value to a lazy stream of outputs. The evaluator
// receives a Program produced by the resolver and returns its output stream
// as Results; nothing is computed until a result is pulled.
//
// # Example
//
//	ev := evaluator.New(evaluator.WithTimeout(time.Second))
//	res := ev.Run(ctx, prog, input)
//	defer res.Close()
//	for v, err := range res.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(value.String(v))
//	}
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandrolain/gojaq/pkg/value"
)

// Evaluator evaluates programs against input values.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
	arith  value.Arith
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Precision is the number of significant decimal digits kept by
	// arithmetic. Defaults to value.DefaultPrecision.
	Precision uint32
	// Timeout bounds a whole run, measured from Run until the stream is
	// exhausted or closed. Zero means no timeout.
	Timeout time.Duration
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		Precision: value.DefaultPrecision,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Precision == 0 {
		options.Precision = value.DefaultPrecision
	}

	return &Evaluator{
		opts:   options,
		logger: options.Logger,
		arith:  value.NewArith(options.Precision),
	}
}

// Options returns the options the evaluator was built with.
func (e *Evaluator) Options() EvalOptions {
	return e.opts
}

// Run starts evaluating p against input and returns its output stream.
// A nil input is treated as null.
func (e *Evaluator) Run(ctx context.Context, p *Program, input value.Value) *Results {
	if ctx == nil {
		ctx = context.Background()
	}
	cancel := context.CancelFunc(func() {})
	if e.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
	}

	res := &Results{ctx: ctx, cancel: cancel, logger: e.logger, debug: e.opts.Debug}
	if p == nil || p.root == nil {
		res.it = fail(fmt.Errorf("invalid program"))
		return res
	}
	if input == nil {
		input = value.NullValue
	}

	if e.opts.Debug {
		e.logger.Debug("run started",
			"definitions", p.defs,
			"input", value.TypeName(input),
			"precision", e.arith.Precision())
	}

	r := &runner{ctx: ctx, arith: e.arith}
	res.it = r.run(p.root, nil, input)
	return res
}

// Eval runs p against input and collects every output. The first error
// stops evaluation and is returned together with the outputs before it.
func (e *Evaluator) Eval(ctx context.Context, p *Program, input value.Value) ([]value.Value, error) {
	return e.Run(ctx, p, input).Collect()
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithPrecision sets the decimal precision of arithmetic.
func WithPrecision(digits uint32) EvalOption {
	return func(opts *EvalOptions) {
		opts.Precision = digits
	}
}

// WithTimeout sets the evaluation timeout.
func WithTimeout(timeout time.Duration) EvalOption {
	return func(opts *EvalOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}
