package evaluator

import (
	"context"
	"iter"
	"log/slog"

	"github.com/sandrolain/gojaq/pkg/value"
)

// Results is the output stream of one run. Items are computed on demand.
// After an error item or exhaustion, Next keeps returning false.
//
// Results is not safe for concurrent use. Close releases the run's timeout;
// it is called automatically once the stream ends.
type Results struct {
	it     Iter
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
	debug  bool
	done   bool
}

// Next pulls the next result.
func (r *Results) Next() (Result, bool) {
	if r.done {
		return Result{}, false
	}
	if err := r.ctx.Err(); err != nil {
		if r.debug {
			r.logger.Debug("run cancelled", "error", err)
		}
		r.Close()
		return Result{Err: cancelled(err)}, true
	}
	res, ok := r.it.Next()
	if !ok || res.Err != nil {
		r.Close()
	}
	return res, ok
}

// All returns an iterator over the remaining results, for use with range.
// Breaking out of the loop closes the stream.
func (r *Results) All() iter.Seq2[value.Value, error] {
	return func(yield func(value.Value, error) bool) {
		defer r.Close()
		for {
			res, ok := r.Next()
			if !ok {
				return
			}
			if !yield(res.Value, res.Err) {
				return
			}
		}
	}
}

// Collect drains the stream. It returns the values produced before the
// first error, and that error.
func (r *Results) Collect() ([]value.Value, error) {
	var out []value.Value
	for {
		res, ok := r.Next()
		if !ok {
			return out, nil
		}
		if res.Err != nil {
			return out, res.Err
		}
		out = append(out, res.Value)
	}
}

// Close ends the stream and releases its resources. It is idempotent.
func (r *Results) Close() {
	if r.done {
		return
	}
	r.done = true
	if r.cancel != nil {
		r.cancel()
	}
}
